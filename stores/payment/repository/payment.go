package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/payment"
	"github.com/x-xyz/launchpad/service/query"
)

var Indexes = []query.Index{
	{Keys: bson.D{{Key: "address", Value: 1}}, Unique: true},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) payment.Repo {
	return &impl{q}
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address) (*payment.Balance, error) {
	res := &payment.Balance{}
	if err := im.q.FindOne(c, domain.TableBalances, bson.M{"address": address.ToLower()}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Upsert(c ctx.Ctx, b *payment.Balance) error {
	b.Address = b.Address.ToLower()
	if err := im.q.Upsert(c, domain.TableBalances, bson.M{"address": b.Address}, b); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
