package healthcheck

import (
	"github.com/x-xyz/launchpad/base/ctx"
)

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Report is the probe result per backing store
type Report struct {
	Database Status `json:"database"`
	Cache    Status `json:"cache"`
}

func (r *Report) Healthy() bool {
	return r.Database == StatusUp && r.Cache == StatusUp
}

type HealthCheckUsecase interface {
	// Check probes every store, it never stops at the first failure
	Check(c ctx.Ctx) *Report
}

type HealthCheckRepo interface {
	PingDB(c ctx.Ctx) error
	// PingCache is a no-op when the service runs without redis
	PingCache(c ctx.Ctx) error
}
