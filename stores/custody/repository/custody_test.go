package repository

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/custody"
	"github.com/x-xyz/launchpad/service/query/querytest"
)

const (
	mockCollection = domain.Address("0xCD234A471B72BA2F1CCF0A70FCABA648A5EECD8D")
	mockAlice      = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	mockBob        = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	mockOperator   = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
)

type custodySuite struct {
	suite.Suite
	im custody.Repo
}

func TestCustodySuite(t *testing.T) {
	suite.Run(t, new(custodySuite))
}

func (s *custodySuite) SetupTest() {
	q, _ := querytest.Connect(s.T(), domain.TableTokens, domain.TableHoldings, domain.TableTokenSupplies, domain.TableOperatorApproval)
	s.im = New(q)
}

func (s *custodySuite) TestMoveToken() {
	s.Require().NoError(s.im.InsertTokens(ctx.Background(), []*custody.Token{
		{Collection: mockCollection, TokenId: 0, Owner: mockAlice},
		{Collection: mockCollection, TokenId: 1, Owner: mockAlice},
	}))

	s.Equal(domain.ErrNotTokenOwner, s.im.MoveToken(ctx.Background(), mockCollection, 0, mockBob, mockAlice))
	s.Require().NoError(s.im.MoveToken(ctx.Background(), mockCollection, 0, mockAlice, mockBob))

	t, err := s.im.FindToken(ctx.Background(), mockCollection, 0)
	s.Require().NoError(err)
	s.Equal(mockBob, t.Owner)

	_, err = s.im.FindToken(ctx.Background(), mockCollection, 2)
	s.Equal(domain.ErrNotFound, err)
}

func (s *custodySuite) TestHoldings() {
	n, err := s.im.GetHolding(ctx.Background(), mockCollection, 0, mockAlice)
	s.Require().NoError(err)
	s.Equal(int64(0), n)

	s.Require().NoError(s.im.IncreaseHolding(ctx.Background(), mockCollection, 0, mockAlice, 10))
	s.Equal(domain.ErrInsufficientHoldings, s.im.DecreaseHolding(ctx.Background(), mockCollection, 0, mockAlice, 11))
	s.Equal(domain.ErrInsufficientHoldings, s.im.DecreaseHolding(ctx.Background(), mockCollection, 0, mockBob, 1))
	s.Require().NoError(s.im.DecreaseHolding(ctx.Background(), mockCollection, 0, mockAlice, 4))

	n, err = s.im.GetHolding(ctx.Background(), mockCollection, 0, mockAlice)
	s.Require().NoError(err)
	s.Equal(int64(6), n)
}

func (s *custodySuite) TestApproval() {
	ok, err := s.im.IsApproved(ctx.Background(), mockCollection, mockAlice, mockOperator)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.im.SetApproval(ctx.Background(), &custody.Approval{Collection: mockCollection, Owner: mockAlice, Operator: mockOperator, Approved: true}))
	ok, err = s.im.IsApproved(ctx.Background(), mockCollection, mockAlice, mockOperator)
	s.Require().NoError(err)
	s.True(ok)

	s.Require().NoError(s.im.SetApproval(ctx.Background(), &custody.Approval{Collection: mockCollection, Owner: mockAlice, Operator: mockOperator, Approved: false}))
	ok, err = s.im.IsApproved(ctx.Background(), mockCollection, mockAlice, mockOperator)
	s.Require().NoError(err)
	s.False(ok)
}
