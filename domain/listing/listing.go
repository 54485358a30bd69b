package listing

import (
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
)

type Status string

const (
	StatusActive      Status = "active"
	StatusSold        Status = "sold"
	StatusCancelled   Status = "cancelled"
	StatusInvalidated Status = "invalidated"
)

// Listing offers amount units of one token for a total price. Ids start at 0 and are never reused.
// A listing leaves the active status exactly once.
type Listing struct {
	Id              int64            `json:"id" bson:"id"`
	ContractAddress domain.Address   `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId   `json:"tokenId" bson:"tokenId"`
	TokenType       domain.TokenType `json:"tokenType" bson:"tokenType"`
	Amount          int64            `json:"amount" bson:"amount"`
	Price           domain.Wei       `json:"price" bson:"price"`
	Seller          domain.Address   `json:"seller" bson:"seller"`
	Active          bool             `json:"active" bson:"active"`
	Status          Status           `json:"status" bson:"status"`
	Buyer           domain.Address   `json:"buyer,omitempty" bson:"buyer,omitempty"`
	CreatedAt       time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt" bson:"updatedAt"`
}

type CreateParams struct {
	ContractAddress domain.Address   `json:"contractAddress" validate:"required,address"`
	TokenId         domain.TokenId   `json:"tokenId"`
	Amount          int64            `json:"amount"`
	Price           domain.Wei       `json:"price" validate:"required,wei"`
	TokenType       domain.TokenType `json:"tokenType"`
}

func (p *CreateParams) Validate() error {
	if !p.TokenType.IsValid() || p.Amount <= 0 || p.TokenId < 0 {
		return domain.ErrBadParamInput
	}
	if p.TokenType == domain.TokenTypeSingleOwner && p.Amount != 1 {
		return domain.ErrBadParamInput
	}
	if _, err := domain.ParseWei(string(p.Price)); err != nil {
		return domain.ErrBadParamInput
	}
	return nil
}

type BuyParams struct {
	Value domain.Wei `json:"value" validate:"wei"`
}

type SearchResult struct {
	Items []*Listing `json:"items"`
	Count int        `json:"count"`
}

type findAllOptions struct {
	SortBy          *string
	SortDir         *domain.SortDir
	Offset          *int32
	Limit           *int32
	Seller          *domain.Address
	ContractAddress *domain.Address
	Active          *bool
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSort(sortby string, sortdir domain.SortDir) FindAllOptions {
	return func(options *findAllOptions) error {
		options.SortBy = &sortby
		options.SortDir = &sortdir
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithContractAddress(address domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		options.ContractAddress = address.ToLowerPtr()
		return nil
	}
}

func WithActive(active bool) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Active = &active
		return nil
	}
}

type Repo interface {
	Insert(c ctx.Ctx, l *Listing) error
	FindOne(c ctx.Ctx, id int64) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Listing, error)
	Count(c ctx.Ctx, opts ...FindAllOptions) (int, error)
	// Close moves an active listing to status, domain.ErrListingInactive if it is not active
	Close(c ctx.Ctx, id int64, status Status, buyer domain.Address, at time.Time) error
}

// Usecase is the escrow marketplace
type Usecase interface {
	List(c ctx.Ctx, caller domain.Address, params *CreateParams) (*Listing, error)
	Buy(c ctx.Ctx, caller domain.Address, id int64, value domain.Wei) (*Listing, error)
	Cancel(c ctx.Ctx, caller domain.Address, id int64) (*Listing, error)
	FindOne(c ctx.Ctx, id int64) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Listing, int, error)
}
