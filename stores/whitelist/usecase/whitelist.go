package usecase

import (
	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/whitelist"
)

type impl struct {
	repo whitelist.Repo
}

func New(repo whitelist.Repo) whitelist.Usecase {
	return &impl{repo}
}

func (im *impl) Register(c ctx.Ctx, collection domain.Address, dropId int64, addresses []domain.Address) error {
	if len(addresses) == 0 {
		return nil
	}

	entries := make([]*whitelist.Entry, 0, len(addresses))
	seen := map[domain.Address]bool{}
	for _, a := range addresses {
		a = a.ToLower()
		if seen[a] {
			continue
		}
		seen[a] = true
		entries = append(entries, &whitelist.Entry{
			Collection: collection.ToLower(),
			DropId:     dropId,
			Address:    a,
		})
	}

	if err := im.repo.BulkAdd(c, entries); err != nil {
		c.WithField("err", err).Error("repo.BulkAdd failed")
		return err
	}
	return nil
}

func (im *impl) IsWhitelisted(c ctx.Ctx, collection domain.Address, dropId int64, address domain.Address) (bool, error) {
	return im.repo.Exists(c, collection, dropId, address)
}
