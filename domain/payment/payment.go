package payment

import (
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
)

// Balance is the native currency an address holds in the ledger
type Balance struct {
	Address   domain.Address `json:"address" bson:"address"`
	Amount    domain.Wei     `json:"amount" bson:"amount"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type DepositParams struct {
	Amount domain.Wei `json:"amount" validate:"required,wei"`
}

type Repo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Balance, error)
	Upsert(c ctx.Ctx, b *Balance) error
}

type Usecase interface {
	BalanceOf(c ctx.Ctx, address domain.Address) (domain.Wei, error)
	// Transfer fails with domain.ErrInsufficientFunds or domain.ErrInvalidAddress and moves nothing
	Transfer(c ctx.Ctx, from, to domain.Address, amount domain.Wei) error
	Deposit(c ctx.Ctx, address domain.Address, amount domain.Wei) (domain.Wei, error)
}
