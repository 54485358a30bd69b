package usecase

import (
	"strings"
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/ethereum"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/base/ptr"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/collection"
	"github.com/x-xyz/launchpad/domain/custody"
	"github.com/x-xyz/launchpad/domain/drop"
	"github.com/x-xyz/launchpad/domain/event"
	"github.com/x-xyz/launchpad/domain/keys"
	"github.com/x-xyz/launchpad/domain/sequence"
	"github.com/x-xyz/launchpad/service/cache"
)

var timeNow = time.Now

type CollectionUseCaseCfg struct {
	CollectionRepo collection.Repo
	DropRepo       drop.Repo
	CustodyRepo    custody.Repo
	SequenceRepo   sequence.Repo
	EventUC        event.Usecase
	Cache          cache.Service
	Tx             domain.TxRunner
	Locker         domain.Locker
}

type impl struct {
	collection collection.Repo
	drop       drop.Repo
	custody    custody.Repo
	sequence   sequence.Repo
	event      event.Usecase
	cache      cache.Service
	tx         domain.TxRunner
	locker     domain.Locker
}

func NewCollection(cfg *CollectionUseCaseCfg) collection.Usecase {
	return &impl{
		collection: cfg.CollectionRepo,
		drop:       cfg.DropRepo,
		custody:    cfg.CustodyRepo,
		sequence:   cfg.SequenceRepo,
		event:      cfg.EventUC,
		cache:      cfg.Cache,
		tx:         cfg.Tx,
		locker:     cfg.Locker,
	}
}

// DeploymentAddress is the address a contract deployed by owner with nonce would get
func DeploymentAddress(owner domain.Address, nonce uint64) domain.Address {
	return domain.Address(ethereum.DeploymentAddress(string(owner), nonce))
}

// base uri changes and ownership transfers share the drop lock so a drop can not start in between
func lockKey(address domain.Address) string {
	return keys.CustomKey(":", keys.PfxDrop, address.ToLowerStr())
}

func (im *impl) Create(c ctx.Ctx, caller domain.Address, params *collection.CreateParams) (*collection.Collection, error) {
	if !params.TokenType.IsValid() || len(params.Name) == 0 || len(params.Symbol) == 0 {
		return nil, domain.ErrBadParamInput
	}

	var res *collection.Collection
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		n, err := im.sequence.Next(c, sequence.Deployment, 1)
		if err != nil {
			return err
		}

		col := &collection.Collection{
			Address:   DeploymentAddress(caller, uint64(n-1)),
			Name:      params.Name,
			Symbol:    params.Symbol,
			LogoURI:   params.LogoURI,
			TokenType: params.TokenType,
			Owner:     caller.ToLower(),
			CreatedAt: timeNow(),
		}
		if err := im.collection.Insert(c, col); err != nil {
			return err
		}
		res = col
		return nil
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "caller": caller}).Error("create collection failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address) (*collection.Collection, error) {
	address = address.ToLower()

	res := &collection.Collection{}
	if err := im.cache.GetByFunc(c, string(address), res, func() (interface{}, error) {
		return im.collection.FindOne(c, address)
	}); err != nil {
		return nil, err
	}

	next, err := im.sequence.Current(c, sequence.TokenId(address))
	if err != nil {
		c.WithField("err", err).Error("sequence.Current failed")
		return nil, err
	}
	res.NextTokenId = next
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...collection.FindAllOptions) ([]*collection.Collection, error) {
	return im.collection.FindAll(c, opts...)
}

func (im *impl) Authorize(c ctx.Ctx, address domain.Address, caller domain.Address) (*collection.Collection, error) {
	col, err := im.collection.FindOne(c, address)
	if err != nil {
		return nil, err
	}
	if !col.IsOwner(caller) {
		return nil, domain.ErrUnauthorized
	}
	return col, nil
}

func (im *impl) SetBaseURI(c ctx.Ctx, caller domain.Address, address domain.Address, uri string) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"collection": address,
		"caller":     caller,
	})
	address = address.ToLower()

	var evts []*event.Event
	err := im.locker.WithLock(c, lockKey(address), func() error {
		return im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
			col, err := im.Authorize(c, address, caller)
			if err != nil {
				return err
			}
			if col.TokenType != domain.TokenTypeSingleOwner {
				return domain.ErrUnsupportedTokenType
			}

			now := timeNow()
			if col.CurrentDropId > 0 {
				d, err := im.drop.FindOne(c, address, col.CurrentDropId)
				if err != nil {
					return err
				}
				// the uri is frozen while a drop is pending or live
				if !d.IsOver(now) {
					return domain.ErrDropActiveOrPending
				}
			}

			if err := im.collection.Update(c, address, &collection.UpdatePayload{BaseURI: ptr.String(uri)}); err != nil {
				return err
			}

			evt := &event.Event{
				Type:       event.TypeBaseURIUpdated,
				Collection: address,
				Account:    caller,
				URI:        uri,
				CreatedAt:  now,
			}
			if err := im.event.Record(c, evt); err != nil {
				return err
			}
			evts = append(evts, evt)
			return nil
		})
	})
	if err != nil {
		logReject(c, "set base uri", err)
		return err
	}

	im.invalidate(c, address)
	im.event.Publish(c, evts...)
	return nil
}

func (im *impl) TransferOwnership(c ctx.Ctx, caller domain.Address, address domain.Address, newOwner domain.Address) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"collection": address,
		"caller":     caller,
		"newOwner":   newOwner,
	})
	address = address.ToLower()

	if newOwner.IsZero() {
		return domain.ErrInvalidAddress
	}

	var evts []*event.Event
	err := im.locker.WithLock(c, lockKey(address), func() error {
		return im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
			if _, err := im.Authorize(c, address, caller); err != nil {
				return err
			}

			owner := newOwner.ToLower()
			if err := im.collection.Update(c, address, &collection.UpdatePayload{Owner: &owner}); err != nil {
				return err
			}

			evt := &event.Event{
				Type:         event.TypeOwnershipTransferred,
				Collection:   address,
				Account:      caller,
				Counterparty: owner,
				CreatedAt:    timeNow(),
			}
			if err := im.event.Record(c, evt); err != nil {
				return err
			}
			evts = append(evts, evt)
			return nil
		})
	})
	if err != nil {
		logReject(c, "transfer ownership", err)
		return err
	}

	im.invalidate(c, address)
	im.event.Publish(c, evts...)
	return nil
}

func (im *impl) TokenURI(c ctx.Ctx, address domain.Address, tokenId domain.TokenId) (string, error) {
	col, err := im.collection.FindOne(c, address)
	if err != nil {
		return "", err
	}

	if col.TokenType == domain.TokenTypeMultiOwner {
		s, err := im.custody.FindSupply(c, col.Address, tokenId)
		if err != nil {
			return "", err
		}
		return s.URI, nil
	}

	if _, err := im.custody.FindToken(c, col.Address, tokenId); err != nil {
		return "", err
	}
	if len(col.BaseURI) == 0 {
		return "", nil
	}
	return strings.Join([]string{col.BaseURI, "metadata", tokenId.String()}, "/"), nil
}

// invalidate drops the cached read model, a failure leaves it stale until ttl
func (im *impl) invalidate(c ctx.Ctx, address domain.Address) {
	if err := im.cache.Del(c, string(address)); err != nil {
		c.WithField("err", err).Warn("cache.Del failed")
	}
}

func logReject(c ctx.Ctx, op string, err error) {
	if domain.IsRejection(err) {
		c.WithFields(log.Fields{"op": op, "reason": err}).Info("rejected")
		return
	}
	c.WithFields(log.Fields{"op": op, "err": err}).Error("failed")
}
