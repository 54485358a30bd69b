package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/payment"
	"github.com/x-xyz/launchpad/service/query/querytest"
)

const mockAccount = domain.Address("0xC37C41601BC88C91B6569C701F08D37FA0F565F0")

type paymentSuite struct {
	suite.Suite
	im payment.Repo
}

func TestPaymentSuite(t *testing.T) {
	suite.Run(t, new(paymentSuite))
}

func (s *paymentSuite) SetupTest() {
	q, _ := querytest.Connect(s.T(), domain.TableBalances)
	s.Require().NoError(q.EnsureIndexes(ctx.Background(), domain.TableBalances, Indexes))
	s.im = New(q)
}

func (s *paymentSuite) TestUpsert() {
	c := ctx.Background()

	_, err := s.im.FindOne(c, mockAccount)
	s.Equal(domain.ErrNotFound, err)

	now := time.Now().Truncate(time.Millisecond).UTC()
	s.Require().NoError(s.im.Upsert(c, &payment.Balance{Address: mockAccount, Amount: "100", UpdatedAt: now}))
	s.Require().NoError(s.im.Upsert(c, &payment.Balance{Address: mockAccount, Amount: "250", UpdatedAt: now}))

	res, err := s.im.FindOne(c, mockAccount.ToLower())
	s.Require().NoError(err)
	s.Equal(domain.Wei("250"), res.Amount)
	s.Equal(mockAccount.ToLower(), res.Address)
	s.Equal(now, res.UpdatedAt)
}
