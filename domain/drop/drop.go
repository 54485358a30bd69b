package drop

import (
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
)

// Drop is one minting campaign of a collection. Drops of a collection are numbered from 1.
type Drop struct {
	Collection         domain.Address `json:"collection" bson:"collection"`
	Id                 int64          `json:"id" bson:"id"`
	Supply             int64          `json:"supply" bson:"supply"`
	Minted             int64          `json:"minted" bson:"minted"`
	MintLimitPerWallet int64          `json:"mintLimitPerWallet" bson:"mintLimitPerWallet"`
	StartTime          time.Time      `json:"startTime" bson:"startTime"`
	EndTime            time.Time      `json:"endTime" bson:"endTime"`
	Price              domain.Wei     `json:"price" bson:"price"`
	HasWhiteListPhase  bool           `json:"hasWhiteListPhase" bson:"hasWhiteListPhase"`
	WhiteListEndTime   time.Time      `json:"whiteListEndTime" bson:"whiteListEndTime"`
	WhiteListPrice     domain.Wei     `json:"whiteListPrice" bson:"whiteListPrice"`
	CreatedAt          time.Time      `json:"createdAt" bson:"createdAt"`
	// inject in usecase
	CurrentPhase Phase `json:"phase" bson:"-"`
}

// UnitPrice is the price of one unit in phase
func (d *Drop) UnitPrice(phase Phase) domain.Wei {
	if phase == PhaseWhiteList {
		return d.WhiteListPrice
	}
	return d.Price
}

// MintRecord counts the units one account minted in one drop
type MintRecord struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	DropId     int64          `json:"dropId" bson:"dropId"`
	Account    domain.Address `json:"account" bson:"account"`
	Minted     int64          `json:"minted" bson:"minted"`
}

type CreateParams struct {
	Supply             int64            `json:"supply"`
	MintLimitPerWallet int64            `json:"mintLimitPerWallet"`
	StartTime          time.Time        `json:"startTime"`
	EndTime            time.Time        `json:"endTime"`
	Price              domain.Wei       `json:"price" validate:"wei"`
	HasWhiteListPhase  bool             `json:"hasWhiteListPhase"`
	WhiteListEndTime   time.Time        `json:"whiteListEndTime"`
	WhiteListPrice     domain.Wei       `json:"whiteListPrice" validate:"omitempty,wei"`
	WhiteList          []domain.Address `json:"whiteList" validate:"dive,address"`
}

// ValidateWindow checks start < end and, with a whitelist phase, start <= whiteListEnd <= end
func (p *CreateParams) ValidateWindow() error {
	if !p.StartTime.Before(p.EndTime) {
		return domain.ErrInvalidWindow
	}
	if p.HasWhiteListPhase && (p.WhiteListEndTime.Before(p.StartTime) || p.WhiteListEndTime.After(p.EndTime)) {
		return domain.ErrInvalidWindow
	}
	return nil
}

// Validate checks everything but the window
func (p *CreateParams) Validate() error {
	if p.Supply <= 0 || p.MintLimitPerWallet <= 0 {
		return domain.ErrBadParamInput
	}
	if _, err := domain.ParseWei(string(p.Price)); err != nil {
		return domain.ErrBadParamInput
	}
	if p.HasWhiteListPhase {
		if _, err := domain.ParseWei(string(p.WhiteListPrice)); err != nil {
			return domain.ErrBadParamInput
		}
	}
	return nil
}

type MintParams struct {
	Units int64      `json:"units"`
	Value domain.Wei `json:"value" validate:"wei"`
}

type MintResult struct {
	DropId    int64            `json:"dropId"`
	Phase     Phase            `json:"phase"`
	TokenIds  []domain.TokenId `json:"tokenIds"`
	Quantity  int64            `json:"quantity"`
	UnitPrice domain.Wei       `json:"unitPrice"`
	Cost      domain.Wei       `json:"cost"`
}

type SearchResult struct {
	Items []*Drop `json:"items"`
	Count int     `json:"count"`
}

type findAllOptions struct {
	SortBy     *string
	SortDir    *domain.SortDir
	Offset     *int32
	Limit      *int32
	Collection *domain.Address
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

func WithCollection(collection domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Collection = collection.ToLowerPtr()
		return nil
	}
}

type Repo interface {
	Insert(c ctx.Ctx, d *Drop) error
	FindOne(c ctx.Ctx, collection domain.Address, id int64) (*Drop, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Drop, error)
	Count(c ctx.Ctx, opts ...FindAllOptions) (int, error)
	// IncreaseMinted adds units unless the result would exceed supply, then it returns domain.ErrSupplyExceeded
	IncreaseMinted(c ctx.Ctx, collection domain.Address, id int64, units int64) error
}

type MintLedgerRepo interface {
	// Get returns 0 for an account that never minted
	Get(c ctx.Ctx, collection domain.Address, dropId int64, account domain.Address) (int64, error)
	Increase(c ctx.Ctx, collection domain.Address, dropId int64, account domain.Address, units int64) (int64, error)
}

type Usecase interface {
	Create(c ctx.Ctx, caller domain.Address, collection domain.Address, params *CreateParams) (*Drop, error)
	Mint(c ctx.Ctx, caller domain.Address, collection domain.Address, units int64, value domain.Wei) (*MintResult, error)
	// Current returns domain.ErrNotFound before the first drop
	Current(c ctx.Ctx, collection domain.Address) (*Drop, error)
	FindAll(c ctx.Ctx, collection domain.Address, offset, limit int32) ([]*Drop, int, error)
	GetMintCount(c ctx.Ctx, collection domain.Address, account domain.Address) (int64, error)
	GetWhiteListAccess(c ctx.Ctx, collection domain.Address, account domain.Address) (bool, error)
}
