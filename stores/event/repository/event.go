package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/event"
	"github.com/x-xyz/launchpad/service/query"
)

var Indexes = []query.Index{
	{Keys: bson.D{{Key: "collection", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Keys: bson.D{{Key: "account", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Keys: bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}},
}

func makeFindQuery(optFns ...event.FindAllOptions) (bson.M, error) {
	opts, err := event.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.Type != nil {
		query["type"] = *opts.Type
	}

	if opts.Collection != nil {
		query["collection"] = *opts.Collection
	}

	if opts.Account != nil {
		// either side of the operation
		query["$or"] = bson.A{
			bson.M{"account": *opts.Account},
			bson.M{"counterparty": *opts.Account},
		}
	}

	return query, nil
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) event.Repo {
	return &impl{q}
}

func (im *impl) Insert(c ctx.Ctx, evt *event.Event) error {
	if err := im.q.Insert(c, domain.TableEvents, evt); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...event.FindAllOptions) ([]*event.Event, error) {
	res := []*event.Event{}

	opts, err := event.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("event.GetFindAllOptions failed")
		return res, err
	}

	qry, err := makeFindQuery(optFns...)
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

	if err := im.q.Search(c, domain.TableEvents, offset, limit, sort, qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}
	return res, nil
}

func (im *impl) Count(c ctx.Ctx, opts ...event.FindAllOptions) (int, error) {
	qry, err := makeFindQuery(opts...)
	if err != nil {
		return 0, err
	}
	return im.q.Count(c, domain.TableEvents, qry)
}
