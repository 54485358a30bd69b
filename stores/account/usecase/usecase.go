package usecase

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/ethereum"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/account"
)

const (
	nonceRange   = int32(9999999)
	invalidNonce = int32(-1)
)

type AccountUseCaseCfg struct {
	Repo account.Repo
	// SignatureMsg is the personal-sign template, %s is replaced by the nonce
	SignatureMsg string
}

type impl struct {
	repo         account.Repo
	signatureMsg string
}

// New creates account usecase
func New(cfg *AccountUseCaseCfg) account.Usecase {
	return &impl{
		repo:         cfg.Repo,
		signatureMsg: cfg.SignatureMsg,
	}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	a, err := im.repo.Get(c, address)
	if err != nil && err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("get address error")
	}
	return a, err
}

func (im *impl) Create(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"address": address,
	})
	new := &account.Account{
		Address:   address.ToLower(),
		Nonce:     invalidNonce,
		CreatedAt: time.Now(),
	}
	if err := im.repo.Create(c, new); err != nil {
		c.WithField("err", err).Error("repo.Create failed")
		return nil, err
	}
	return new, nil
}

func (im *impl) GenerateNonce(c ctx.Ctx, address domain.Address) (int32, error) {
	c = ctx.WithValue(c, "address", address)
	if _, err := im.Get(c, address); err != nil && err != domain.ErrNotFound {
		return 0, err
	} else if err == domain.ErrNotFound {
		// if the account doesn't exist, create an empty account
		if _, err := im.Create(c, address); err != nil {
			return 0, err
		}
		c.Info("created new account")
	}

	nonce := im.genNonce()
	if err := im.repo.Update(c, address, &account.Updater{
		Nonce: nonce,
	}); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return 0, err
	}
	return nonce, nil
}

func (im *impl) makeMessageWithNonce(nonce string) []byte {
	return []byte(fmt.Sprintf(im.signatureMsg, nonce))
}

func (im *impl) ValidateSignature(c ctx.Ctx, address domain.Address, signature string) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"address":   address,
		"signature": signature,
	})

	a, err := im.repo.Get(c, address)
	if err == domain.ErrNotFound {
		return domain.ErrInvalidNonce
	} else if err != nil {
		c.WithField("err", err).Error("get address failed")
		return err
	}
	if a.Nonce == invalidNonce {
		return domain.ErrInvalidNonce
	}

	// a nonce is good for one attempt
	defer func() {
		if err := im.repo.Update(c, address, &account.Updater{Nonce: invalidNonce}); err != nil {
			c.WithField("err", err).Warn("reset nonce failed")
		}
	}()

	msg := im.makeMessageWithNonce(strconv.Itoa(int(a.Nonce)))
	if isValid, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		c.WithField("reason", err).Info("malformed signature")
		return domain.ErrInvalidSignature
	} else if !isValid {
		return domain.ErrInvalidSignature
	}
	return nil
}

func (im *impl) genNonce() int32 {
	return rand.Int31n(nonceRange) + 1
}
