package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/whitelist"
	mWhitelist "github.com/x-xyz/launchpad/domain/whitelist/mocks"
)

func TestRegisterDedupes(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := &mWhitelist.Repo{}
	im := New(repo)

	col := domain.Address("0xABC")
	repo.On("BulkAdd", mock.Anything, mock.MatchedBy(func(entries []*whitelist.Entry) bool {
		if len(entries) != 2 {
			return false
		}
		return entries[0].Address == "0xaa" && entries[1].Address == "0xbb" && entries[0].Collection == "0xabc"
	})).Return(nil).Once()

	req.NoError(im.Register(c, col, 1, []domain.Address{"0xAA", "0xaa", "0xbb"}))
	repo.AssertExpectations(t)
}

func TestRegisterEmpty(t *testing.T) {
	repo := &mWhitelist.Repo{}
	require.NoError(t, New(repo).Register(ctx.Background(), "0xabc", 1, nil))
	repo.AssertNotCalled(t, "BulkAdd", mock.Anything, mock.Anything)
}
