package account

import (
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
)

type Account struct {
	Address   domain.Address `json:"address" bson:"address"`
	Nonce     int32          `json:"nonce" bson:"nonce"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type Updater struct {
	Nonce int32 `bson:"nonce"`
}

type Repo interface {
	Get(c ctx.Ctx, address domain.Address) (*Account, error)
	Create(c ctx.Ctx, a *Account) error
	Update(c ctx.Ctx, address domain.Address, updater *Updater) error
}

type Usecase interface {
	Get(c ctx.Ctx, address domain.Address) (*Account, error)
	Create(c ctx.Ctx, address domain.Address) (*Account, error)
	// GenerateNonce creates the account on first use
	GenerateNonce(c ctx.Ctx, address domain.Address) (int32, error)
	// ValidateSignature burns the nonce whether or not the signature matches
	ValidateSignature(c ctx.Ctx, address domain.Address, signature string) error
}
