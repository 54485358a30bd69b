package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/listing"
	"github.com/x-xyz/launchpad/service/query"
)

var Indexes = []query.Index{
	{Keys: bson.D{{Key: "id", Value: 1}}, Unique: true},
	{Keys: bson.D{{Key: "seller", Value: 1}, {Key: "active", Value: 1}}},
	{Keys: bson.D{{Key: "contractAddress", Value: 1}, {Key: "tokenId", Value: 1}}},
}

func makeFindQuery(optFns ...listing.FindAllOptions) (bson.M, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.Seller != nil {
		query["seller"] = *opts.Seller
	}

	if opts.ContractAddress != nil {
		query["contractAddress"] = *opts.ContractAddress
	}

	if opts.Active != nil {
		query["active"] = *opts.Active
	}

	return query, nil
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) listing.Repo {
	return &impl{q}
}

func (im *impl) Insert(c ctx.Ctx, l *listing.Listing) error {
	l.ContractAddress = l.ContractAddress.ToLower()
	l.Seller = l.Seller.ToLower()
	if err := im.q.Insert(c, domain.TableListings, l); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, id int64) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := im.q.FindOne(c, domain.TableListings, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptions) ([]*listing.Listing, error) {
	res := []*listing.Listing{}

	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return res, err
	}

	query, err := makeFindQuery(optFns...)
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

	if err := im.q.Search(c, domain.TableListings, offset, limit, sort, query, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}
	return res, nil
}

func (im *impl) Count(c ctx.Ctx, optFns ...listing.FindAllOptions) (int, error) {
	query, err := makeFindQuery(optFns...)
	if err != nil {
		return 0, err
	}

	count, err := im.q.Count(c, domain.TableListings, query)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return count, nil
}

func (im *impl) Close(c ctx.Ctx, id int64, status listing.Status, buyer domain.Address, at time.Time) error {
	slt := bson.M{"id": id, "active": true}
	set := bson.M{
		"active":    false,
		"status":    status,
		"updatedAt": at,
	}
	if !buyer.IsEmpty() {
		set["buyer"] = buyer.ToLower()
	}

	if err := im.q.CustomPatch(c, domain.TableListings, slt, bson.M{"$set": set}, false); err == query.ErrNotFound {
		return domain.ErrListingInactive
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}
