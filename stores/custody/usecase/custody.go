package usecase

import (
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/collection"
	"github.com/x-xyz/launchpad/domain/custody"
	"github.com/x-xyz/launchpad/domain/event"
	"github.com/x-xyz/launchpad/domain/sequence"
)

var timeNow = time.Now

type CustodyUseCaseCfg struct {
	Repo           custody.Repo
	CollectionRepo collection.Repo
	SequenceRepo   sequence.Repo
	EventUC        event.Usecase
	Tx             domain.TxRunner
}

type impl struct {
	repo       custody.Repo
	collection collection.Repo
	sequence   sequence.Repo
	event      event.Usecase
	tx         domain.TxRunner
}

func New(cfg *CustodyUseCaseCfg) custody.Usecase {
	return &impl{
		repo:       cfg.Repo,
		collection: cfg.CollectionRepo,
		sequence:   cfg.SequenceRepo,
		event:      cfg.EventUC,
		tx:         cfg.Tx,
	}
}

// nextIds reserves n token ids of a collection, ids start at 0
func (im *impl) nextIds(c ctx.Ctx, address domain.Address, n int64) (int64, error) {
	last, err := im.sequence.Next(c, sequence.TokenId(address), n)
	if err != nil {
		c.WithField("err", err).Error("sequence.Next failed")
		return 0, err
	}
	return last - n, nil
}

func (im *impl) MintUnits(c ctx.Ctx, address domain.Address, to domain.Address, quantity int64) ([]domain.TokenId, error) {
	if quantity <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if to.IsZero() {
		return nil, domain.ErrInvalidAddress
	}

	first, err := im.nextIds(c, address, quantity)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	ids := make([]domain.TokenId, 0, quantity)
	tokens := make([]*custody.Token, 0, quantity)
	for id := first; id < first+quantity; id++ {
		ids = append(ids, domain.TokenId(id))
		tokens = append(tokens, &custody.Token{
			Collection: address,
			TokenId:    domain.TokenId(id),
			Owner:      to,
			CreatedAt:  now,
		})
	}
	if err := im.repo.InsertTokens(c, tokens); err != nil {
		return nil, err
	}
	return ids, nil
}

func (im *impl) MintSupply(c ctx.Ctx, caller domain.Address, address domain.Address, params *custody.MintSupplyParams) (*custody.Supply, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"collection": address,
		"caller":     caller,
	})
	address = address.ToLower()
	caller = caller.ToLower()

	if params.Amount <= 0 {
		return nil, domain.ErrBadParamInput
	}

	var (
		res  *custody.Supply
		evts []*event.Event
	)
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		col, err := im.collection.FindOne(c, address)
		if err != nil {
			return err
		}
		if !col.IsOwner(caller) {
			return domain.ErrUnauthorized
		}
		if col.TokenType != domain.TokenTypeMultiOwner {
			return domain.ErrUnsupportedTokenType
		}

		id, err := im.nextIds(c, address, 1)
		if err != nil {
			return err
		}

		now := timeNow()
		s := &custody.Supply{
			Collection:  address,
			TokenId:     domain.TokenId(id),
			TotalSupply: params.Amount,
			URI:         params.URI,
			Creator:     caller,
			CreatedAt:   now,
		}
		if err := im.repo.InsertSupply(c, s); err != nil {
			return err
		}
		if err := im.repo.IncreaseHolding(c, address, s.TokenId, caller, params.Amount); err != nil {
			return err
		}

		evt := &event.Event{
			Type:       event.TypeSupplyMinted,
			Collection: address,
			Account:    caller,
			TokenIds:   []domain.TokenId{s.TokenId},
			Quantity:   params.Amount,
			URI:        params.URI,
			CreatedAt:  now,
		}
		if err := im.event.Record(c, evt); err != nil {
			return err
		}
		evts = append(evts, evt)
		res = s
		return nil
	})
	if err != nil {
		logReject(c, "mint supply", err)
		return nil, err
	}

	im.event.Publish(c, evts...)
	return res, nil
}

func (im *impl) TransferUnits(c ctx.Ctx, address domain.Address, from, to domain.Address, tokenId domain.TokenId, amount int64, tokenType domain.TokenType) error {
	if to.IsZero() {
		return domain.ErrInvalidAddress
	}
	if amount <= 0 {
		return domain.ErrBadParamInput
	}

	switch tokenType {
	case domain.TokenTypeSingleOwner:
		if amount != 1 {
			return domain.ErrBadParamInput
		}
		return im.repo.MoveToken(c, address, tokenId, from, to)
	case domain.TokenTypeMultiOwner:
		if err := im.repo.DecreaseHolding(c, address, tokenId, from, amount); err != nil {
			return err
		}
		return im.repo.IncreaseHolding(c, address, tokenId, to, amount)
	}
	return domain.ErrUnsupportedTokenType
}

func (im *impl) BalanceOf(c ctx.Ctx, address domain.Address, owner domain.Address, tokenId domain.TokenId, tokenType domain.TokenType) (int64, error) {
	if tokenType == domain.TokenTypeMultiOwner {
		return im.repo.GetHolding(c, address, tokenId, owner)
	}

	t, err := im.repo.FindToken(c, address, tokenId)
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	if t.Owner.Equals(owner) {
		return 1, nil
	}
	return 0, nil
}

func (im *impl) OwnerOf(c ctx.Ctx, address domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	t, err := im.repo.FindToken(c, address, tokenId)
	if err != nil {
		return "", err
	}
	return t.Owner, nil
}

func (im *impl) TotalSupply(c ctx.Ctx, address domain.Address, tokenId domain.TokenId) (int64, error) {
	s, err := im.repo.FindSupply(c, address, tokenId)
	if err == nil {
		return s.TotalSupply, nil
	} else if err != domain.ErrNotFound {
		return 0, err
	}

	// single-owner tokens are their own supply of one
	if _, err := im.repo.FindToken(c, address, tokenId); err != nil {
		return 0, err
	}
	return 1, nil
}

func (im *impl) URI(c ctx.Ctx, address domain.Address, tokenId domain.TokenId) (string, error) {
	s, err := im.repo.FindSupply(c, address, tokenId)
	if err != nil {
		return "", err
	}
	return s.URI, nil
}

func (im *impl) SetApprovalForAll(c ctx.Ctx, caller domain.Address, address domain.Address, operator domain.Address, approved bool) error {
	if operator.IsZero() {
		return domain.ErrInvalidAddress
	}
	if operator.Equals(caller) {
		return domain.ErrBadParamInput
	}
	if _, err := im.collection.FindOne(c, address); err != nil {
		return err
	}

	if err := im.repo.SetApproval(c, &custody.Approval{
		Collection: address,
		Owner:      caller,
		Operator:   operator,
		Approved:   approved,
	}); err != nil {
		c.WithFields(log.Fields{"err": err, "operator": operator}).Error("repo.SetApproval failed")
		return err
	}
	return nil
}

func (im *impl) IsApprovedForAll(c ctx.Ctx, address domain.Address, owner, operator domain.Address) (bool, error) {
	return im.repo.IsApproved(c, address, owner, operator)
}

func logReject(c ctx.Ctx, op string, err error) {
	if domain.IsRejection(err) {
		c.WithFields(log.Fields{"op": op, "reason": err}).Info("rejected")
		return
	}
	c.WithFields(log.Fields{"op": op, "err": err}).Error("failed")
}
