package usecase

import (
	"math/big"
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/base/metrics"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/payment"
)

var (
	met     = metrics.New("payment")
	timeNow = time.Now
)

type PaymentUseCaseCfg struct {
	Repo payment.Repo
	Tx   domain.TxRunner
}

type impl struct {
	repo payment.Repo
	tx   domain.TxRunner
}

func New(cfg *PaymentUseCaseCfg) payment.Usecase {
	return &impl{
		repo: cfg.Repo,
		tx:   cfg.Tx,
	}
}

func (im *impl) balance(c ctx.Ctx, address domain.Address) (*big.Int, error) {
	b, err := im.repo.FindOne(c, address)
	if err == domain.ErrNotFound {
		return new(big.Int), nil
	} else if err != nil {
		return nil, err
	}
	return b.Amount.BigInt()
}

func (im *impl) store(c ctx.Ctx, address domain.Address, amount *big.Int) error {
	return im.repo.Upsert(c, &payment.Balance{
		Address:   address.ToLower(),
		Amount:    domain.WeiFromBig(amount),
		UpdatedAt: timeNow(),
	})
}

func (im *impl) BalanceOf(c ctx.Ctx, address domain.Address) (domain.Wei, error) {
	b, err := im.balance(c, address)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "address": address}).Error("balance failed")
		return "", err
	}
	return domain.WeiFromBig(b), nil
}

func (im *impl) Transfer(c ctx.Ctx, from, to domain.Address, amount domain.Wei) error {
	if to.IsZero() {
		return domain.ErrInvalidAddress
	}
	amt, err := amount.BigInt()
	if err != nil {
		return domain.ErrBadParamInput
	}
	if amt.Sign() == 0 {
		return nil
	}

	return im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		fb, err := im.balance(c, from)
		if err != nil {
			return err
		}
		if fb.Cmp(amt) < 0 {
			return domain.ErrInsufficientFunds
		}
		if err := im.store(c, from, fb.Sub(fb, amt)); err != nil {
			return err
		}

		// read after the debit so a self transfer nets to zero
		tb, err := im.balance(c, to)
		if err != nil {
			return err
		}
		if err := im.store(c, to, tb.Add(tb, amt)); err != nil {
			return err
		}
		met.BumpSum("transfer", 1)
		return nil
	})
}

func (im *impl) Deposit(c ctx.Ctx, address domain.Address, amount domain.Wei) (domain.Wei, error) {
	if address.IsZero() {
		return "", domain.ErrInvalidAddress
	}
	amt, err := amount.BigInt()
	if err != nil {
		return "", domain.ErrBadParamInput
	}

	var res domain.Wei
	err = im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		b, err := im.balance(c, address)
		if err != nil {
			return err
		}
		b.Add(b, amt)
		if err := im.store(c, address, b); err != nil {
			return err
		}
		res = domain.WeiFromBig(b)
		return nil
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "address": address}).Error("deposit failed")
		return "", err
	}

	c.WithFields(log.Fields{"address": address, "amount": amount}).Info("deposited")
	met.BumpSum("deposit", 1)
	return res, nil
}
