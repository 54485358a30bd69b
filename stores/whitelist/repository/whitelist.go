package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/whitelist"
	"github.com/x-xyz/launchpad/service/query"
)

var Indexes = []query.Index{
	{Keys: bson.D{{Key: "collection", Value: 1}, {Key: "dropId", Value: 1}, {Key: "address", Value: 1}}, Unique: true},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) whitelist.Repo {
	return &impl{q}
}

func selector(collection domain.Address, dropId int64, address domain.Address) bson.M {
	return bson.M{
		"collection": collection.ToLower(),
		"dropId":     dropId,
		"address":    address.ToLower(),
	}
}

func (im *impl) BulkAdd(c ctx.Ctx, entries []*whitelist.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	ops := make([]query.UpsertOp, 0, len(entries))
	for _, e := range entries {
		e.Collection = e.Collection.ToLower()
		e.Address = e.Address.ToLower()
		ops = append(ops, query.UpsertOp{
			Selector: selector(e.Collection, e.DropId, e.Address),
			Updater:  e,
		})
	}

	if _, _, err := im.q.BulkUpsert(c, domain.TableWhitelist, ops); err != nil {
		c.WithField("err", err).Error("q.BulkUpsert failed")
		return err
	}
	return nil
}

func (im *impl) Exists(c ctx.Ctx, collection domain.Address, dropId int64, address domain.Address) (bool, error) {
	n, err := im.q.Count(c, domain.TableWhitelist, selector(collection, dropId, address))
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return false, err
	}
	return n > 0, nil
}

func (im *impl) Count(c ctx.Ctx, collection domain.Address, dropId int64) (int, error) {
	n, err := im.q.Count(c, domain.TableWhitelist, bson.M{"collection": collection.ToLower(), "dropId": dropId})
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}
