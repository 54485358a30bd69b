package usecase

import (
	"strconv"
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/base/metrics"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/collection"
	"github.com/x-xyz/launchpad/domain/custody"
	"github.com/x-xyz/launchpad/domain/event"
	"github.com/x-xyz/launchpad/domain/keys"
	"github.com/x-xyz/launchpad/domain/listing"
	"github.com/x-xyz/launchpad/domain/payment"
	"github.com/x-xyz/launchpad/domain/sequence"
)

var (
	met     = metrics.New("listing")
	timeNow = time.Now
)

type ListingUseCaseCfg struct {
	Repo           listing.Repo
	CollectionRepo collection.Repo
	SequenceRepo   sequence.Repo
	CustodyUC      custody.Usecase
	PaymentUC      payment.Usecase
	EventUC        event.Usecase
	Tx             domain.TxRunner
	Locker         domain.Locker
	// Operator is the address sellers approve so the marketplace can move their tokens
	Operator domain.Address
}

type impl struct {
	repo       listing.Repo
	collection collection.Repo
	sequence   sequence.Repo
	custody    custody.Usecase
	payment    payment.Usecase
	event      event.Usecase
	tx         domain.TxRunner
	locker     domain.Locker
	operator   domain.Address
}

func New(cfg *ListingUseCaseCfg) listing.Usecase {
	return &impl{
		repo:       cfg.Repo,
		collection: cfg.CollectionRepo,
		sequence:   cfg.SequenceRepo,
		custody:    cfg.CustodyUC,
		payment:    cfg.PaymentUC,
		event:      cfg.EventUC,
		tx:         cfg.Tx,
		locker:     cfg.Locker,
		operator:   cfg.Operator.ToLower(),
	}
}

func lockKey(id int64) string {
	return keys.CustomKey(":", keys.PfxListing, strconv.FormatInt(id, 10))
}

func (im *impl) List(c ctx.Ctx, caller domain.Address, params *listing.CreateParams) (*listing.Listing, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"collection": params.ContractAddress,
		"tokenId":    params.TokenId,
		"caller":     caller,
	})
	caller = caller.ToLower()
	address := params.ContractAddress.ToLower()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	var (
		res  *listing.Listing
		evts []*event.Event
	)
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		col, err := im.collection.FindOne(c, address)
		if err != nil {
			return err
		}
		if col.TokenType != params.TokenType {
			return domain.ErrBadParamInput
		}

		held, err := im.custody.BalanceOf(c, address, caller, params.TokenId, params.TokenType)
		if err != nil {
			return err
		}
		if held < params.Amount {
			return domain.ErrInsufficientHoldings
		}
		if ok, err := im.custody.IsApprovedForAll(c, address, caller, im.operator); err != nil {
			return err
		} else if !ok {
			return domain.ErrNotApproved
		}

		next, err := im.sequence.Next(c, sequence.Listing, 1)
		if err != nil {
			return err
		}

		now := timeNow()
		l := &listing.Listing{
			Id:              next - 1,
			ContractAddress: address,
			TokenId:         params.TokenId,
			TokenType:       params.TokenType,
			Amount:          params.Amount,
			Price:           params.Price,
			Seller:          caller,
			Active:          true,
			Status:          listing.StatusActive,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := im.repo.Insert(c, l); err != nil {
			return err
		}

		evt := im.makeEvent(event.TypeListed, l, caller, "", now)
		if err := im.event.Record(c, evt); err != nil {
			return err
		}
		evts = append(evts, evt)
		res = l
		return nil
	})
	if err != nil {
		logReject(c, "list", err)
		return nil, err
	}

	im.event.Publish(c, evts...)
	met.BumpSum("listed", 1)
	return res, nil
}

func (im *impl) Buy(c ctx.Ctx, caller domain.Address, id int64, value domain.Wei) (*listing.Listing, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"listingId": id,
		"caller":    caller,
		"value":     value,
	})
	caller = caller.ToLower()

	var (
		res  *listing.Listing
		evts []*event.Event
		// set when the seller can no longer deliver, the invalidation still commits
		invalid error
	)
	err := im.locker.WithLock(c, lockKey(id), func() error {
		return im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
			evts, invalid = nil, nil

			l, err := im.repo.FindOne(c, id)
			if err != nil {
				return err
			}
			if !l.Active {
				return domain.ErrListingInactive
			}
			if l.Seller.Equals(caller) {
				return domain.ErrBadParamInput
			}
			if err := domain.PayableCheck(value, l.Price); err != nil {
				return err
			}

			now := timeNow()
			if err := im.verifySeller(c, l); err == domain.ErrSellerNoLongerHolds || err == domain.ErrAuthorizationRevoked {
				invalid = err
				if err := im.repo.Close(c, id, listing.StatusInvalidated, "", now); err != nil {
					return err
				}
				evt := im.makeEvent(event.TypeListingInvalidated, l, caller, l.Seller, now)
				if err := im.event.Record(c, evt); err != nil {
					return err
				}
				evts = append(evts, evt)
				return nil
			} else if err != nil {
				return err
			}

			// flag first so a concurrent buyer bypassing the lock fails here
			if err := im.repo.Close(c, id, listing.StatusSold, caller, now); err != nil {
				return err
			}
			if err := im.custody.TransferUnits(c, l.ContractAddress, l.Seller, caller, l.TokenId, l.Amount, l.TokenType); err != nil {
				c.WithField("err", err).Error("custody.TransferUnits failed")
				return err
			}
			if err := im.payment.Transfer(c, caller, l.Seller, l.Price); err != nil {
				return err
			}

			evt := im.makeEvent(event.TypeListingSold, l, caller, l.Seller, now)
			if err := im.event.Record(c, evt); err != nil {
				return err
			}
			evts = append(evts, evt)

			l.Active = false
			l.Status = listing.StatusSold
			l.Buyer = caller
			l.UpdatedAt = now
			res = l
			return nil
		})
	})
	if err != nil {
		logReject(c, "buy", err)
		return nil, err
	}

	// an invalidation commits and publishes but the buy itself fails
	im.event.Publish(c, evts...)
	if invalid != nil {
		logReject(c, "buy", invalid)
		met.BumpSum("invalidated", 1)
		return nil, invalid
	}

	met.BumpSum("sold", 1)
	return res, nil
}

// verifySeller checks the seller can still deliver the listed units
func (im *impl) verifySeller(c ctx.Ctx, l *listing.Listing) error {
	held, err := im.custody.BalanceOf(c, l.ContractAddress, l.Seller, l.TokenId, l.TokenType)
	if err != nil {
		return err
	}
	if held < l.Amount {
		return domain.ErrSellerNoLongerHolds
	}

	ok, err := im.custody.IsApprovedForAll(c, l.ContractAddress, l.Seller, im.operator)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAuthorizationRevoked
	}
	return nil
}

func (im *impl) Cancel(c ctx.Ctx, caller domain.Address, id int64) (*listing.Listing, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"listingId": id,
		"caller":    caller,
	})
	caller = caller.ToLower()

	var (
		res  *listing.Listing
		evts []*event.Event
	)
	err := im.locker.WithLock(c, lockKey(id), func() error {
		return im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
			l, err := im.repo.FindOne(c, id)
			if err != nil {
				return err
			}
			if !l.Seller.Equals(caller) {
				return domain.ErrUnauthorized
			}
			if !l.Active {
				return domain.ErrListingInactive
			}

			now := timeNow()
			if err := im.repo.Close(c, id, listing.StatusCancelled, "", now); err != nil {
				return err
			}

			evt := im.makeEvent(event.TypeListingCancelled, l, caller, "", now)
			if err := im.event.Record(c, evt); err != nil {
				return err
			}
			evts = append(evts, evt)

			l.Active = false
			l.Status = listing.StatusCancelled
			l.UpdatedAt = now
			res = l
			return nil
		})
	})
	if err != nil {
		logReject(c, "cancel", err)
		return nil, err
	}

	im.event.Publish(c, evts...)
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, id int64) (*listing.Listing, error) {
	return im.repo.FindOne(c, id)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptions) ([]*listing.Listing, int, error) {
	res, err := im.repo.FindAll(c, opts...)
	if err != nil {
		return nil, 0, err
	}
	count, err := im.repo.Count(c, opts...)
	if err != nil {
		return nil, 0, err
	}
	return res, count, nil
}

func (im *impl) makeEvent(typ event.Type, l *listing.Listing, account, counterparty domain.Address, at time.Time) *event.Event {
	id := l.Id
	return &event.Event{
		Type:         typ,
		Collection:   l.ContractAddress,
		Account:      account,
		Counterparty: counterparty,
		ListingId:    &id,
		TokenIds:     []domain.TokenId{l.TokenId},
		Quantity:     l.Amount,
		Price:        l.Price,
		CreatedAt:    at,
	}
}

func logReject(c ctx.Ctx, op string, err error) {
	if domain.IsRejection(err) {
		c.WithFields(log.Fields{"op": op, "reason": err}).Info("rejected")
		return
	}
	c.WithFields(log.Fields{"op": op, "err": err}).Error("failed")
}
