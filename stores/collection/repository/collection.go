package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/database/mongoclient"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/collection"
	"github.com/x-xyz/launchpad/service/query"
)

var Indexes = []query.Index{
	{Keys: bson.D{{Key: "address", Value: 1}}, Unique: true},
	{Keys: bson.D{{Key: "owner", Value: 1}}},
}

func makeFindQuery(optFns ...collection.FindAllOptions) (bson.M, error) {
	opts, err := collection.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.Owner != nil {
		query["owner"] = *opts.Owner
	}

	return query, nil
}

type collectionImpl struct {
	q query.Mongo
}

func NewCollection(q query.Mongo) collection.Repo {
	return &collectionImpl{q}
}

func (im *collectionImpl) Insert(c ctx.Ctx, col *collection.Collection) error {
	col.Address = col.Address.ToLower()
	col.Owner = col.Owner.ToLower()
	if err := im.q.Insert(c, domain.TableCollections, col); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *collectionImpl) FindOne(c ctx.Ctx, address domain.Address) (*collection.Collection, error) {
	res := &collection.Collection{}
	if err := im.q.FindOne(c, domain.TableCollections, bson.M{"address": address.ToLower()}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *collectionImpl) FindAll(c ctx.Ctx, optFns ...collection.FindAllOptions) ([]*collection.Collection, error) {
	res := []*collection.Collection{}

	opts, err := collection.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("collection.GetFindAllOptions failed")
		return res, err
	}

	query, err := makeFindQuery(optFns...)
	if err != nil {
		return res, err
	}

	offset, limit, sort := 0, 0, "-createdAt"
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

	if err := im.q.Search(c, domain.TableCollections, offset, limit, sort, query, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}
	return res, nil
}

func (im *collectionImpl) Update(c ctx.Ctx, address domain.Address, payload *collection.UpdatePayload) error {
	if payload.Owner != nil {
		payload.Owner = payload.Owner.ToLowerPtr()
	}

	slt := bson.M{"address": address.ToLower()}
	if val, err := mongoclient.MakeBsonM(payload); err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	} else if len(val) == 0 {
		return nil
	} else if err := im.q.Patch(c, domain.TableCollections, slt, val); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Patch failed")
		return err
	}
	return nil
}
