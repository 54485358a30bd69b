package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/base/metrics"
	"github.com/x-xyz/launchpad/domain/event"
)

var (
	met     = metrics.New("event")
	timeNow = time.Now
)

type EventUseCaseCfg struct {
	Repo      event.Repo
	Notifiers []event.Notifier
	// Pool runs notifier calls, Publish drops the notification when the pool stays full for ScheduleTimeout
	Pool            *goroutines.Pool
	ScheduleTimeout time.Duration
}

type impl struct {
	repo            event.Repo
	notifiers       []event.Notifier
	pool            *goroutines.Pool
	scheduleTimeout time.Duration
}

func New(cfg *EventUseCaseCfg) event.Usecase {
	im := &impl{
		repo:            cfg.Repo,
		notifiers:       cfg.Notifiers,
		pool:            cfg.Pool,
		scheduleTimeout: cfg.ScheduleTimeout,
	}
	if im.pool == nil {
		im.pool = goroutines.NewPool(8, goroutines.WithTaskQueueLength(256))
	}
	if im.scheduleTimeout <= 0 {
		im.scheduleTimeout = 3 * time.Second
	}
	return im
}

func (im *impl) Record(c ctx.Ctx, evt *event.Event) error {
	if len(evt.Id) == 0 {
		evt.Id = uuid.NewString()
	}
	if evt.CreatedAt.IsZero() {
		evt.CreatedAt = timeNow()
	}
	evt.Collection = evt.Collection.ToLower()
	evt.Account = evt.Account.ToLower()
	evt.Counterparty = evt.Counterparty.ToLower()

	if err := im.repo.Insert(c, evt); err != nil {
		c.WithFields(log.Fields{"err": err, "type": evt.Type}).Error("repo.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Publish(c ctx.Ctx, evts ...*event.Event) {
	for _, evt := range evts {
		met.BumpSum("published", 1, "type", string(evt.Type))
		for _, n := range im.notifiers {
			evt, n := evt, n
			err := im.pool.ScheduleWithTimeout(im.scheduleTimeout, func() {
				if err := n.Notify(c, evt); err != nil {
					met.BumpSum("notify.err", 1, "type", string(evt.Type))
					c.WithFields(log.Fields{"err": err, "event": evt.Id}).Warn("notify failed")
				}
			})
			if err != nil {
				met.BumpSum("notify.dropped", 1, "type", string(evt.Type))
				c.WithFields(log.Fields{"err": err, "event": evt.Id}).Error("failed to ScheduleWithTimeout")
			}
		}
	}
}

func (im *impl) FindAll(c ctx.Ctx, opts ...event.FindAllOptions) ([]*event.Event, int, error) {
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
