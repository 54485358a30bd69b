package usecase

import (
	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/metrics"
	hcdomain "github.com/x-xyz/launchpad/domain/healthcheck"
)

var met = metrics.New("healthcheck")

type impl struct {
	repo hcdomain.HealthCheckRepo
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(c ctx.Ctx) *hcdomain.Report {
	return &hcdomain.Report{
		Database: probe(c, "database", im.repo.PingDB),
		Cache:    probe(c, "cache", im.repo.PingCache),
	}
}

func probe(c ctx.Ctx, name string, ping func(ctx.Ctx) error) hcdomain.Status {
	if err := ping(c); err != nil {
		c.WithFields(map[string]interface{}{"err": err, "store": name}).Error("ping failed")
		met.BumpSum("down", 1, "store", name)
		return hcdomain.StatusDown
	}
	return hcdomain.StatusUp
}
