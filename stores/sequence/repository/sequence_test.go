package repository

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/sequence"
	"github.com/x-xyz/launchpad/service/query/querytest"
)

type sequenceSuite struct {
	suite.Suite
	im sequence.Repo
}

func (s *sequenceSuite) SetupTest() {
	q, _ := querytest.Connect(s.T(), domain.TableSequences)
	s.im = New(q)
}

func TestSequenceSuite(t *testing.T) {
	suite.Run(t, new(sequenceSuite))
}

func (s *sequenceSuite) TestNext() {
	c := ctx.Background()
	name := sequence.TokenId("0xabc")

	cur, err := s.im.Current(c, name)
	s.Require().NoError(err)
	s.Equal(int64(0), cur)

	last, err := s.im.Next(c, name, 5)
	s.Require().NoError(err)
	s.Equal(int64(5), last)

	last, err = s.im.Next(c, name, 4)
	s.Require().NoError(err)
	s.Equal(int64(9), last)

	cur, err = s.im.Current(c, name)
	s.Require().NoError(err)
	s.Equal(int64(9), cur)

	// counters are independent
	last, err = s.im.Next(c, sequence.Listing, 1)
	s.Require().NoError(err)
	s.Equal(int64(1), last)
}
