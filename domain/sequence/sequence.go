package sequence

import (
	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/keys"
)

// Deployment numbers collection deployments, it is the nonce of the deployer
const Deployment = "deployment"

// Listing numbers marketplace listings
const Listing = "listing"

// DropId names the drop id counter of a collection
func DropId(collection domain.Address) string {
	return keys.CustomKey(":", "drop", collection.ToLowerStr())
}

// TokenId names the token id counter of a collection
func TokenId(collection domain.Address) string {
	return keys.CustomKey(":", "token", collection.ToLowerStr())
}

type Sequence struct {
	Name  string `bson:"_id"`
	Value int64  `bson:"value"`
}

// Repo hands out monotonically increasing numbers
type Repo interface {
	// Next advances the counter by n and returns the new value
	Next(c ctx.Ctx, name string, n int64) (int64, error)
	// Current returns 0 for a counter never advanced
	Current(c ctx.Ctx, name string) (int64, error)
}
