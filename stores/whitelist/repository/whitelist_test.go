package repository

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/whitelist"
	"github.com/x-xyz/launchpad/service/query/querytest"
)

const (
	mockCollection = domain.Address("0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d")
	mockA          = domain.Address("0xCE4468E7CE84ACEB74363F4EA64E5A038176F369")
	mockB          = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
)

type whitelistSuite struct {
	suite.Suite
	im whitelist.Repo
}

func (s *whitelistSuite) SetupTest() {
	q, _ := querytest.Connect(s.T(), domain.TableWhitelist)
	s.Require().NoError(q.EnsureIndexes(ctx.Background(), domain.TableWhitelist, Indexes))
	s.im = New(q)
}

func TestWhitelistSuite(t *testing.T) {
	suite.Run(t, new(whitelistSuite))
}

func (s *whitelistSuite) TestBulkAddCollapsesDuplicates() {
	c := ctx.Background()
	entries := []*whitelist.Entry{
		{Collection: mockCollection, DropId: 1, Address: mockA},
		{Collection: mockCollection, DropId: 1, Address: mockA.ToLower()},
		{Collection: mockCollection, DropId: 1, Address: mockB},
	}
	s.Require().NoError(s.im.BulkAdd(c, entries))

	n, err := s.im.Count(c, mockCollection, 1)
	s.Require().NoError(err)
	s.Equal(2, n)

	ok, err := s.im.Exists(c, mockCollection, 1, mockA)
	s.Require().NoError(err)
	s.True(ok)

	// membership is per drop
	ok, err = s.im.Exists(c, mockCollection, 2, mockA)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *whitelistSuite) TestBulkAddEmpty() {
	s.NoError(s.im.BulkAdd(ctx.Background(), nil))
}
