package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/sequence"
	"github.com/x-xyz/launchpad/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) sequence.Repo {
	return &impl{q}
}

func (im *impl) Next(c ctx.Ctx, name string, n int64) (int64, error) {
	res := &sequence.Sequence{}
	if err := im.q.Increment(c, domain.TableSequences, bson.M{"_id": name}, res, "value", n); err != nil {
		c.WithField("err", err).WithField("name", name).Error("q.Increment failed")
		return 0, err
	}
	return res.Value, nil
}

func (im *impl) Current(c ctx.Ctx, name string) (int64, error) {
	res := &sequence.Sequence{}
	if err := im.q.FindOne(c, domain.TableSequences, bson.M{"_id": name}, res); err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithField("err", err).WithField("name", name).Error("q.FindOne failed")
		return 0, err
	}
	return res.Value, nil
}
