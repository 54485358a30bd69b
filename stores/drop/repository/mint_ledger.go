package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/drop"
	"github.com/x-xyz/launchpad/service/query"
)

var MintLedgerIndexes = []query.Index{
	{Keys: bson.D{{Key: "collection", Value: 1}, {Key: "dropId", Value: 1}, {Key: "account", Value: 1}}, Unique: true},
}

type mintLedgerImpl struct {
	q query.Mongo
}

func NewMintLedger(q query.Mongo) drop.MintLedgerRepo {
	return &mintLedgerImpl{q}
}

func ledgerKey(collection domain.Address, dropId int64, account domain.Address) bson.M {
	return bson.M{
		"collection": collection.ToLower(),
		"dropId":     dropId,
		"account":    account.ToLower(),
	}
}

func (im *mintLedgerImpl) Get(c ctx.Ctx, collection domain.Address, dropId int64, account domain.Address) (int64, error) {
	res := &drop.MintRecord{}
	if err := im.q.FindOne(c, domain.TableMintLedger, ledgerKey(collection, dropId, account), res); err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return 0, err
	}
	return res.Minted, nil
}

func (im *mintLedgerImpl) Increase(c ctx.Ctx, collection domain.Address, dropId int64, account domain.Address, units int64) (int64, error) {
	res := &drop.MintRecord{}
	if err := im.q.Increment(c, domain.TableMintLedger, ledgerKey(collection, dropId, account), res, "minted", units); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return res.Minted, nil
}
