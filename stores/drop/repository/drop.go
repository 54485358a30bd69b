package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/drop"
	"github.com/x-xyz/launchpad/service/query"
)

var DropIndexes = []query.Index{
	{Keys: bson.D{{Key: "collection", Value: 1}, {Key: "id", Value: 1}}, Unique: true},
}

func makeFindQuery(optFns ...drop.FindAllOptions) (bson.M, error) {
	opts, err := drop.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.Collection != nil {
		query["collection"] = *opts.Collection
	}

	return query, nil
}

type dropImpl struct {
	q query.Mongo
}

func NewDrop(q query.Mongo) drop.Repo {
	return &dropImpl{q}
}

func (im *dropImpl) Insert(c ctx.Ctx, d *drop.Drop) error {
	d.Collection = d.Collection.ToLower()
	if err := im.q.Insert(c, domain.TableDrops, d); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *dropImpl) FindOne(c ctx.Ctx, collection domain.Address, id int64) (*drop.Drop, error) {
	res := &drop.Drop{}
	qry := bson.M{"collection": collection.ToLower(), "id": id}
	if err := im.q.FindOne(c, domain.TableDrops, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *dropImpl) FindAll(c ctx.Ctx, optFns ...drop.FindAllOptions) ([]*drop.Drop, error) {
	res := []*drop.Drop{}

	opts, err := drop.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("drop.GetFindAllOptions failed")
		return res, err
	}

	qry, err := makeFindQuery(optFns...)
	if err != nil {
		return res, err
	}

	offset, limit, sort := 0, 0, "-id"
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	if opts.SortBy != nil && opts.SortDir != nil {
		sort = *opts.SortBy
		if *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	if err := im.q.Search(c, domain.TableDrops, offset, limit, sort, qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}
	return res, nil
}

func (im *dropImpl) Count(c ctx.Ctx, opts ...drop.FindAllOptions) (int, error) {
	qry, err := makeFindQuery(opts...)
	if err != nil {
		return 0, err
	}
	return im.q.Count(c, domain.TableDrops, qry)
}

func (im *dropImpl) IncreaseMinted(c ctx.Ctx, collection domain.Address, id int64, units int64) error {
	// minted + units <= supply is re-asserted by the write itself
	selector := bson.M{
		"collection": collection.ToLower(),
		"id":         id,
		"$expr": bson.M{
			"$lte": bson.A{bson.M{"$add": bson.A{"$minted", units}}, "$supply"},
		},
	}
	updater := bson.M{"$inc": bson.M{"minted": units}}

	if err := im.q.CustomPatch(c, domain.TableDrops, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrSupplyExceeded
	} else if err != nil {
		c.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}
