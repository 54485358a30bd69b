package event

import (
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
)

type Type string

const (
	TypeDropCreated          Type = "dropCreated"
	TypeTokenMinted          Type = "tokenMinted"
	TypeListed               Type = "listed"
	TypeListingSold          Type = "listingSold"
	TypeListingCancelled     Type = "listingCancelled"
	TypeListingInvalidated   Type = "listingInvalidated"
	TypeBaseURIUpdated       Type = "baseURIUpdated"
	TypeSupplyMinted         Type = "supplyMinted"
	TypeOwnershipTransferred Type = "ownershipTransferred"
)

// Event is what off-chain observers see of a committed operation
type Event struct {
	Id         string         `json:"id" bson:"_id"`
	Type       Type           `json:"type" bson:"type"`
	Collection domain.Address `json:"collection" bson:"collection"`
	// the caller of the operation
	Account domain.Address `json:"account" bson:"account"`
	// the other side, seller of a sale or new owner of a transfer
	Counterparty domain.Address   `json:"counterparty,omitempty" bson:"counterparty,omitempty"`
	DropId       int64            `json:"dropId,omitempty" bson:"dropId,omitempty"`
	ListingId    *int64           `json:"listingId,omitempty" bson:"listingId,omitempty"`
	TokenIds     []domain.TokenId `json:"tokenIds,omitempty" bson:"tokenIds,omitempty"`
	Quantity     int64            `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Price        domain.Wei       `json:"price,omitempty" bson:"price,omitempty"`
	URI          string           `json:"uri,omitempty" bson:"uri,omitempty"`
	CreatedAt    time.Time        `json:"createdAt" bson:"createdAt"`
}

type SearchResult struct {
	Items []*Event `json:"items"`
	Count int      `json:"count"`
}

type findAllOptions struct {
	SortBy     *string
	SortDir    *domain.SortDir
	Offset     *int32
	Limit      *int32
	Type       *Type
	Collection *domain.Address
	Account    *domain.Address
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

func WithType(t Type) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Type = &t
		return nil
	}
}

func WithCollection(collection domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Collection = collection.ToLowerPtr()
		return nil
	}
}

func WithAccount(account domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Account = account.ToLowerPtr()
		return nil
	}
}

type Repo interface {
	Insert(c ctx.Ctx, evt *Event) error
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Event, error)
	Count(c ctx.Ctx, opts ...FindAllOptions) (int, error)
}

// Notifier delivers committed events outside the service
type Notifier interface {
	Notify(c ctx.Ctx, evt *Event) error
}

type Usecase interface {
	// Record stores evt within the transaction of c
	Record(c ctx.Ctx, evt *Event) error
	// Publish hands committed events to the notifiers without blocking the caller
	Publish(c ctx.Ctx, evts ...*Event)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Event, int, error)
}
