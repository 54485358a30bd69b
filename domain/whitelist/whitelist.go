package whitelist

import (
	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
)

// Entry grants one address the whitelist phase of one drop
type Entry struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	DropId     int64          `json:"dropId" bson:"dropId"`
	Address    domain.Address `json:"address" bson:"address"`
}

type Repo interface {
	// BulkAdd stores entries, duplicates collapse into one
	BulkAdd(c ctx.Ctx, entries []*Entry) error
	Exists(c ctx.Ctx, collection domain.Address, dropId int64, address domain.Address) (bool, error)
	Count(c ctx.Ctx, collection domain.Address, dropId int64) (int, error)
}

// Usecase is the whitelist registry. A drop's set is written once when the drop is created.
type Usecase interface {
	Register(c ctx.Ctx, collection domain.Address, dropId int64, addresses []domain.Address) error
	IsWhitelisted(c ctx.Ctx, collection domain.Address, dropId int64, address domain.Address) (bool, error)
}
