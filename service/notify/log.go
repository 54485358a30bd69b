package notify

import (
	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/domain/event"
)

type logImpl struct{}

// NewLog writes events to the service log, used when no discord channel is configured
func NewLog() event.Notifier {
	return &logImpl{}
}

func (im *logImpl) Notify(c ctx.Ctx, evt *event.Event) error {
	c.WithFields(log.Fields{
		"id":         evt.Id,
		"type":       evt.Type,
		"collection": evt.Collection,
		"account":    evt.Account,
	}).Info("event")
	return nil
}
