package custody

import (
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
)

// Token is a single-owner unit
type Token struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner      domain.Address `json:"owner" bson:"owner"`
	CreatedAt  time.Time      `json:"createdAt" bson:"createdAt"`
}

// Holding is the amount of one multi-owner token id an owner holds
type Holding struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner      domain.Address `json:"owner" bson:"owner"`
	Amount     int64          `json:"amount" bson:"amount"`
}

// Supply describes one multi-owner token id
type Supply struct {
	Collection  domain.Address `json:"collection" bson:"collection"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	TotalSupply int64          `json:"totalSupply" bson:"totalSupply"`
	URI         string         `json:"uri" bson:"uri"`
	Creator     domain.Address `json:"creator" bson:"creator"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
}

type Approval struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	Owner      domain.Address `json:"owner" bson:"owner"`
	Operator   domain.Address `json:"operator" bson:"operator"`
	Approved   bool           `json:"approved" bson:"approved"`
}

type MintSupplyParams struct {
	Amount int64  `json:"amount"`
	URI    string `json:"uri"`
}

type Repo interface {
	InsertTokens(c ctx.Ctx, tokens []*Token) error
	FindToken(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (*Token, error)
	// MoveToken returns domain.ErrNotTokenOwner unless from owns the token
	MoveToken(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId, from, to domain.Address) error

	// GetHolding returns 0 for an owner without holding
	GetHolding(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId, owner domain.Address) (int64, error)
	IncreaseHolding(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId, owner domain.Address, amount int64) error
	// DecreaseHolding returns domain.ErrInsufficientHoldings when owner holds less than amount
	DecreaseHolding(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId, owner domain.Address, amount int64) error

	InsertSupply(c ctx.Ctx, s *Supply) error
	FindSupply(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (*Supply, error)

	SetApproval(c ctx.Ctx, a *Approval) error
	IsApproved(c ctx.Ctx, collection domain.Address, owner, operator domain.Address) (bool, error)
}

// Usecase is the token custody surface of every collection
type Usecase interface {
	// MintUnits creates quantity single-owner units numbered after the last one
	MintUnits(c ctx.Ctx, collection domain.Address, to domain.Address, quantity int64) ([]domain.TokenId, error)
	MintSupply(c ctx.Ctx, caller domain.Address, collection domain.Address, params *MintSupplyParams) (*Supply, error)
	TransferUnits(c ctx.Ctx, collection domain.Address, from, to domain.Address, tokenId domain.TokenId, amount int64, tokenType domain.TokenType) error
	BalanceOf(c ctx.Ctx, collection domain.Address, owner domain.Address, tokenId domain.TokenId, tokenType domain.TokenType) (int64, error)
	OwnerOf(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (domain.Address, error)
	TotalSupply(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (int64, error)
	URI(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (string, error)
	SetApprovalForAll(c ctx.Ctx, caller domain.Address, collection domain.Address, operator domain.Address, approved bool) error
	IsApprovedForAll(c ctx.Ctx, collection domain.Address, owner, operator domain.Address) (bool, error)
}
