package usecase

import (
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/base/metrics"
	"github.com/x-xyz/launchpad/base/ptr"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/collection"
	"github.com/x-xyz/launchpad/domain/custody"
	"github.com/x-xyz/launchpad/domain/drop"
	"github.com/x-xyz/launchpad/domain/event"
	"github.com/x-xyz/launchpad/domain/keys"
	"github.com/x-xyz/launchpad/domain/payment"
	"github.com/x-xyz/launchpad/domain/sequence"
	"github.com/x-xyz/launchpad/domain/whitelist"
	"github.com/x-xyz/launchpad/service/cache"
)

var (
	met     = metrics.New("drop")
	timeNow = time.Now
)

type DropUseCaseCfg struct {
	Repo           drop.Repo
	LedgerRepo     drop.MintLedgerRepo
	CollectionRepo collection.Repo
	SequenceRepo   sequence.Repo
	WhitelistUC    whitelist.Usecase
	CustodyUC      custody.Usecase
	PaymentUC      payment.Usecase
	EventUC        event.Usecase
	Tx             domain.TxRunner
	Locker         domain.Locker

	// CollectionCache is the collection read cache, Create clears the entry it makes stale
	CollectionCache cache.Service
}

type impl struct {
	repo       drop.Repo
	ledger     drop.MintLedgerRepo
	collection collection.Repo
	sequence   sequence.Repo
	whitelist  whitelist.Usecase
	custody    custody.Usecase
	payment    payment.Usecase
	event      event.Usecase
	tx         domain.TxRunner
	locker     domain.Locker
	cache      cache.Service
}

func New(cfg *DropUseCaseCfg) drop.Usecase {
	return &impl{
		repo:       cfg.Repo,
		ledger:     cfg.LedgerRepo,
		collection: cfg.CollectionRepo,
		sequence:   cfg.SequenceRepo,
		whitelist:  cfg.WhitelistUC,
		custody:    cfg.CustodyUC,
		payment:    cfg.PaymentUC,
		event:      cfg.EventUC,
		tx:         cfg.Tx,
		locker:     cfg.Locker,
		cache:      cfg.CollectionCache,
	}
}

func lockKey(address domain.Address) string {
	return keys.CustomKey(":", keys.PfxDrop, address.ToLowerStr())
}

func (im *impl) Create(c ctx.Ctx, caller domain.Address, address domain.Address, params *drop.CreateParams) (*drop.Drop, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"collection": address,
		"caller":     caller,
	})
	address = address.ToLower()

	var (
		res  *drop.Drop
		evts []*event.Event
	)
	err := im.locker.WithLock(c, lockKey(address), func() error {
		return im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
			col, err := im.collection.FindOne(c, address)
			if err != nil {
				return err
			}
			if !col.IsOwner(caller) {
				return domain.ErrUnauthorized
			}
			if err := params.ValidateWindow(); err != nil {
				return err
			}
			if err := params.Validate(); err != nil {
				return err
			}
			if col.TokenType != domain.TokenTypeSingleOwner {
				return domain.ErrUnsupportedTokenType
			}

			now := timeNow()
			if col.CurrentDropId > 0 {
				prev, err := im.repo.FindOne(c, address, col.CurrentDropId)
				if err != nil {
					c.WithField("err", err).Error("repo.FindOne failed")
					return err
				}
				// a pending drop blocks as well as a live one
				if !prev.IsOver(now) {
					return domain.ErrCampaignOverlap
				}
			}

			id, err := im.sequence.Next(c, sequence.DropId(address), 1)
			if err != nil {
				return err
			}

			d := &drop.Drop{
				Collection:         address,
				Id:                 id,
				Supply:             params.Supply,
				MintLimitPerWallet: params.MintLimitPerWallet,
				StartTime:          params.StartTime,
				EndTime:            params.EndTime,
				Price:              params.Price,
				HasWhiteListPhase:  params.HasWhiteListPhase,
				WhiteListEndTime:   params.WhiteListEndTime,
				WhiteListPrice:     params.WhiteListPrice,
				CreatedAt:          now,
			}
			if d.Price == "" {
				d.Price = domain.ZeroWei
			}
			if d.WhiteListPrice == "" {
				d.WhiteListPrice = domain.ZeroWei
			}
			if err := im.repo.Insert(c, d); err != nil {
				return err
			}
			if err := im.collection.Update(c, address, &collection.UpdatePayload{CurrentDropId: ptr.Int64(id)}); err != nil {
				c.WithField("err", err).Error("collection.Update failed")
				return err
			}
			if err := im.whitelist.Register(c, address, id, params.WhiteList); err != nil {
				return err
			}

			evt := &event.Event{
				Type:       event.TypeDropCreated,
				Collection: address,
				Account:    caller.ToLower(),
				DropId:     id,
				Quantity:   d.Supply,
				Price:      d.Price,
				CreatedAt:  now,
			}
			if err := im.event.Record(c, evt); err != nil {
				return err
			}
			evts = append(evts, evt)
			res = d
			return nil
		})
	})
	if err != nil {
		logReject(c, "create drop", err)
		return nil, err
	}

	if err := im.cache.Del(c, string(address)); err != nil {
		c.WithField("err", err).Warn("cache.Del failed")
	}
	im.event.Publish(c, evts...)
	met.BumpSum("create", 1)
	res.CurrentPhase = res.Phase(timeNow())
	return res, nil
}

func (im *impl) Mint(c ctx.Ctx, caller domain.Address, address domain.Address, units int64, value domain.Wei) (*drop.MintResult, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"collection": address,
		"caller":     caller,
		"units":      units,
		"value":      value,
	})
	address = address.ToLower()
	caller = caller.ToLower()

	if units <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if _, err := domain.ParseWei(string(value)); err != nil {
		return nil, domain.ErrBadParamInput
	}

	var (
		res  *drop.MintResult
		evts []*event.Event
	)
	err := im.locker.WithLock(c, lockKey(address), func() error {
		return im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
			col, err := im.collection.FindOne(c, address)
			if err != nil {
				return err
			}
			if col.CurrentDropId == 0 {
				return domain.ErrDropNotStarted
			}
			d, err := im.repo.FindOne(c, address, col.CurrentDropId)
			if err != nil {
				c.WithField("err", err).Error("repo.FindOne failed")
				return err
			}

			now := timeNow()
			phase := d.Phase(now)
			switch phase {
			case drop.PhasePending:
				return domain.ErrDropNotStarted
			case drop.PhaseEnded:
				return domain.ErrDropEnded
			case drop.PhaseWhiteList:
				if ok, err := im.whitelist.IsWhitelisted(c, address, d.Id, caller); err != nil {
					return err
				} else if !ok {
					return domain.ErrNotWhitelisted
				}
			}

			unitPrice := d.UnitPrice(phase)
			cost, err := unitPrice.Mul(units)
			if err != nil {
				c.WithField("err", err).Error("stored price is malformed")
				return err
			}
			if err := domain.PayableCheck(value, cost); err != nil {
				return err
			}
			// compared by remaining room, minted+units can overflow int64
			if units > d.Supply || units > d.Supply-d.Minted {
				return domain.ErrSupplyExceeded
			}
			minted, err := im.ledger.Get(c, address, d.Id, caller)
			if err != nil {
				return err
			}
			if units > d.MintLimitPerWallet-minted {
				return domain.ErrWalletLimitExceeded
			}

			// counters move before any token or payment does
			if err := im.repo.IncreaseMinted(c, address, d.Id, units); err != nil {
				return err
			}
			if _, err := im.ledger.Increase(c, address, d.Id, caller, units); err != nil {
				return err
			}
			ids, err := im.custody.MintUnits(c, address, caller, units)
			if err != nil {
				return err
			}
			if err := im.payment.Transfer(c, caller, col.Owner, cost); err != nil {
				return err
			}

			evt := &event.Event{
				Type:         event.TypeTokenMinted,
				Collection:   address,
				Account:      caller,
				Counterparty: col.Owner,
				DropId:       d.Id,
				TokenIds:     ids,
				Quantity:     units,
				Price:        unitPrice,
				CreatedAt:    now,
			}
			if err := im.event.Record(c, evt); err != nil {
				return err
			}
			evts = append(evts, evt)

			res = &drop.MintResult{
				DropId:    d.Id,
				Phase:     phase,
				TokenIds:  ids,
				Quantity:  units,
				UnitPrice: unitPrice,
				Cost:      cost,
			}
			return nil
		})
	})
	if err != nil {
		logReject(c, "mint", err)
		met.BumpSum("mint.reject", 1, "reason", err.Error())
		return nil, err
	}

	im.event.Publish(c, evts...)
	met.BumpSum("mint.units", float64(units), "phase", res.Phase.String())
	return res, nil
}

func (im *impl) currentDropId(c ctx.Ctx, address domain.Address) (int64, error) {
	col, err := im.collection.FindOne(c, address)
	if err != nil {
		return 0, err
	}
	return col.CurrentDropId, nil
}

func (im *impl) Current(c ctx.Ctx, address domain.Address) (*drop.Drop, error) {
	id, err := im.currentDropId(c, address)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, domain.ErrNotFound
	}

	d, err := im.repo.FindOne(c, address, id)
	if err != nil {
		return nil, err
	}
	d.CurrentPhase = d.Phase(timeNow())
	return d, nil
}

func (im *impl) FindAll(c ctx.Ctx, address domain.Address, offset, limit int32) ([]*drop.Drop, int, error) {
	opts := []drop.FindAllOptions{
		drop.WithCollection(address),
		drop.WithPagination(offset, limit),
	}

	res, err := im.repo.FindAll(c, opts...)
	if err != nil {
		return nil, 0, err
	}
	count, err := im.repo.Count(c, opts...)
	if err != nil {
		return nil, 0, err
	}

	now := timeNow()
	for _, d := range res {
		d.CurrentPhase = d.Phase(now)
	}
	return res, count, nil
}

func (im *impl) GetMintCount(c ctx.Ctx, address domain.Address, account domain.Address) (int64, error) {
	id, err := im.currentDropId(c, address)
	if err != nil || id == 0 {
		return 0, err
	}
	return im.ledger.Get(c, address, id, account)
}

func (im *impl) GetWhiteListAccess(c ctx.Ctx, address domain.Address, account domain.Address) (bool, error) {
	id, err := im.currentDropId(c, address)
	if err != nil || id == 0 {
		return false, err
	}
	return im.whitelist.IsWhitelisted(c, address, id, account)
}

// logReject keeps business rejections out of the error log
func logReject(c ctx.Ctx, op string, err error) {
	if domain.IsRejection(err) {
		c.WithFields(log.Fields{"op": op, "reason": err}).Info("rejected")
		return
	}
	c.WithFields(log.Fields{"op": op, "err": err}).Error("failed")
}
