package collection

import (
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
)

type Collection struct {
	Address   domain.Address   `json:"address" bson:"address"`
	Name      string           `json:"name" bson:"name"`
	Symbol    string           `json:"symbol" bson:"symbol"`
	LogoURI   string           `json:"logoUri" bson:"logoUri"`
	TokenType domain.TokenType `json:"tokenType" bson:"tokenType"`
	Owner     domain.Address   `json:"owner" bson:"owner"`
	BaseURI   string           `json:"baseUri" bson:"baseUri"`
	// 0 before the first drop
	CurrentDropId int64     `json:"currentDropId" bson:"currentDropId"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	// inject in usecase
	NextTokenId int64 `json:"nextTokenId" bson:"-"`
}

// IsOwner is the administrative gate of a collection
func (c *Collection) IsOwner(caller domain.Address) bool {
	return !caller.IsZero() && c.Owner.Equals(caller)
}

type CreateParams struct {
	Name      string           `json:"name" validate:"required"`
	Symbol    string           `json:"symbol" validate:"required"`
	LogoURI   string           `json:"logoUri"`
	TokenType domain.TokenType `json:"tokenType"`
}

type UpdatePayload struct {
	Owner         *domain.Address `bson:"owner,omitempty"`
	BaseURI       *string         `bson:"baseUri,omitempty"`
	CurrentDropId *int64          `bson:"currentDropId,omitempty"`
}

type findAllOptions struct {
	SortBy  *string
	SortDir *domain.SortDir
	Offset  *int32
	Limit   *int32
	Owner   *domain.Address
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

func WithOwner(owner domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Owner = owner.ToLowerPtr()
		return nil
	}
}

type Repo interface {
	Insert(c ctx.Ctx, col *Collection) error
	FindOne(c ctx.Ctx, address domain.Address) (*Collection, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Collection, error)
	Update(c ctx.Ctx, address domain.Address, payload *UpdatePayload) error
}

type Usecase interface {
	Create(c ctx.Ctx, caller domain.Address, params *CreateParams) (*Collection, error)
	// FindOne may serve a cached record. Gated operations read the repo directly.
	FindOne(c ctx.Ctx, address domain.Address) (*Collection, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Collection, error)
	// Authorize returns the collection when caller owns it, domain.ErrUnauthorized otherwise
	Authorize(c ctx.Ctx, address domain.Address, caller domain.Address) (*Collection, error)
	SetBaseURI(c ctx.Ctx, caller domain.Address, address domain.Address, uri string) error
	TransferOwnership(c ctx.Ctx, caller domain.Address, address domain.Address, newOwner domain.Address) error
	TokenURI(c ctx.Ctx, address domain.Address, tokenId domain.TokenId) (string, error)
}
