package domain

import (
	"github.com/x-xyz/launchpad/base/ctx"
)

// TxRunner runs fn in one all-or-nothing transaction.
// Every repository call made with the ctx handed to fn joins the transaction.
type TxRunner interface {
	RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error
}

// Locker serializes calls sharing the same key across instances
type Locker interface {
	WithLock(c ctx.Ctx, key string, fn func() error) error
}
