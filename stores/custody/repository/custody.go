package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/custody"
	"github.com/x-xyz/launchpad/service/query"
)

var (
	TokenIndexes = []query.Index{
		{Keys: bson.D{{Key: "collection", Value: 1}, {Key: "tokenId", Value: 1}}, Unique: true},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	}
	HoldingIndexes = []query.Index{
		{Keys: bson.D{{Key: "collection", Value: 1}, {Key: "tokenId", Value: 1}, {Key: "owner", Value: 1}}, Unique: true},
	}
	SupplyIndexes = []query.Index{
		{Keys: bson.D{{Key: "collection", Value: 1}, {Key: "tokenId", Value: 1}}, Unique: true},
	}
	ApprovalIndexes = []query.Index{
		{Keys: bson.D{{Key: "collection", Value: 1}, {Key: "owner", Value: 1}, {Key: "operator", Value: 1}}, Unique: true},
	}
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) custody.Repo {
	return &impl{q}
}

func tokenKey(collection domain.Address, tokenId domain.TokenId) bson.M {
	return bson.M{"collection": collection.ToLower(), "tokenId": tokenId}
}

func holdingKey(collection domain.Address, tokenId domain.TokenId, owner domain.Address) bson.M {
	return bson.M{"collection": collection.ToLower(), "tokenId": tokenId, "owner": owner.ToLower()}
}

func (im *impl) InsertTokens(c ctx.Ctx, tokens []*custody.Token) error {
	for _, t := range tokens {
		t.Collection = t.Collection.ToLower()
		t.Owner = t.Owner.ToLower()
		if err := im.q.Insert(c, domain.TableTokens, t); err != nil {
			c.WithFields(log.Fields{"err": err, "tokenId": t.TokenId}).Error("q.Insert failed")
			return err
		}
	}
	return nil
}

func (im *impl) FindToken(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (*custody.Token, error) {
	res := &custody.Token{}
	if err := im.q.FindOne(c, domain.TableTokens, tokenKey(collection, tokenId), res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) MoveToken(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId, from, to domain.Address) error {
	selector := tokenKey(collection, tokenId)
	selector["owner"] = from.ToLower()
	updater := bson.M{"$set": bson.M{"owner": to.ToLower()}}

	if err := im.q.CustomPatch(c, domain.TableTokens, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrNotTokenOwner
	} else if err != nil {
		c.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *impl) GetHolding(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId, owner domain.Address) (int64, error) {
	res := &custody.Holding{}
	if err := im.q.FindOne(c, domain.TableHoldings, holdingKey(collection, tokenId, owner), res); err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return 0, err
	}
	return res.Amount, nil
}

func (im *impl) IncreaseHolding(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId, owner domain.Address, amount int64) error {
	res := &custody.Holding{}
	if err := im.q.Increment(c, domain.TableHoldings, holdingKey(collection, tokenId, owner), res, "amount", amount); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return err
	}
	return nil
}

func (im *impl) DecreaseHolding(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId, owner domain.Address, amount int64) error {
	selector := holdingKey(collection, tokenId, owner)
	selector["amount"] = bson.M{"$gte": amount}
	updater := bson.M{"$inc": bson.M{"amount": -amount}}

	if err := im.q.CustomPatch(c, domain.TableHoldings, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrInsufficientHoldings
	} else if err != nil {
		c.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *impl) InsertSupply(c ctx.Ctx, s *custody.Supply) error {
	s.Collection = s.Collection.ToLower()
	s.Creator = s.Creator.ToLower()
	if err := im.q.Insert(c, domain.TableTokenSupplies, s); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindSupply(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (*custody.Supply, error) {
	res := &custody.Supply{}
	if err := im.q.FindOne(c, domain.TableTokenSupplies, tokenKey(collection, tokenId), res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) SetApproval(c ctx.Ctx, a *custody.Approval) error {
	a.Collection = a.Collection.ToLower()
	a.Owner = a.Owner.ToLower()
	a.Operator = a.Operator.ToLower()

	selector := bson.M{"collection": a.Collection, "owner": a.Owner, "operator": a.Operator}
	if err := im.q.Upsert(c, domain.TableOperatorApproval, selector, a); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) IsApproved(c ctx.Ctx, collection domain.Address, owner, operator domain.Address) (bool, error) {
	res := &custody.Approval{}
	selector := bson.M{"collection": collection.ToLower(), "owner": owner.ToLower(), "operator": operator.ToLower()}
	if err := im.q.FindOne(c, domain.TableOperatorApproval, selector, res); err == query.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return false, err
	}
	return res.Approved, nil
}
