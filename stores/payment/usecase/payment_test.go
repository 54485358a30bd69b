package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	mDomain "github.com/x-xyz/launchpad/domain/mocks"
	"github.com/x-xyz/launchpad/domain/payment"
	mPayment "github.com/x-xyz/launchpad/domain/payment/mocks"
)

const (
	mockA = domain.Address("0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")
	mockB = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
)

type paymentSuite struct {
	suite.Suite

	repo *mPayment.Repo
	tx   *mDomain.TxRunner
	im   payment.Usecase

	now      time.Time
	balances map[domain.Address]domain.Wei
}

func TestPaymentSuite(t *testing.T) {
	suite.Run(t, new(paymentSuite))
}

func (s *paymentSuite) SetupTest() {
	s.repo = &mPayment.Repo{}
	s.tx = &mDomain.TxRunner{}
	s.im = New(&PaymentUseCaseCfg{Repo: s.repo, Tx: s.tx})

	s.now = time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return s.now }
	s.balances = map[domain.Address]domain.Wei{
		mockA: "1000",
	}

	s.tx.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, fn func(ctx.Ctx) error) error { return fn(c) })
	s.repo.On("FindOne", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, a domain.Address) *payment.Balance {
			if w, ok := s.balances[a]; ok {
				return &payment.Balance{Address: a, Amount: w}
			}
			return nil
		},
		func(c ctx.Ctx, a domain.Address) error {
			if _, ok := s.balances[a]; ok {
				return nil
			}
			return domain.ErrNotFound
		})
	s.repo.On("Upsert", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, b *payment.Balance) error {
			s.balances[b.Address] = b.Amount
			return nil
		})
}

func (s *paymentSuite) TestTransfer() {
	c := ctx.Background()
	s.Require().NoError(s.im.Transfer(c, mockA, mockB, "400"))
	s.Equal(domain.Wei("600"), s.balances[mockA])
	s.Equal(domain.Wei("400"), s.balances[mockB])

	b, err := s.im.BalanceOf(c, mockB)
	s.NoError(err)
	s.Equal(domain.Wei("400"), b)
}

func (s *paymentSuite) TestTransferInsufficient() {
	s.Equal(domain.ErrInsufficientFunds, s.im.Transfer(ctx.Background(), mockA, mockB, "1001"))
	s.Equal(domain.Wei("1000"), s.balances[mockA])
	s.NotContains(s.balances, mockB)

	s.Equal(domain.ErrInsufficientFunds, s.im.Transfer(ctx.Background(), mockB, mockA, "1"))
}

func (s *paymentSuite) TestTransferEdges() {
	c := ctx.Background()
	s.Equal(domain.ErrInvalidAddress, s.im.Transfer(c, mockA, domain.EmptyAddress, "1"))
	s.Equal(domain.ErrBadParamInput, s.im.Transfer(c, mockA, mockB, "-1"))

	s.NoError(s.im.Transfer(c, mockB, mockA, "0"))
	s.repo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)

	s.NoError(s.im.Transfer(c, mockA, mockA, "300"))
	s.Equal(domain.Wei("1000"), s.balances[mockA])
}

func (s *paymentSuite) TestDeposit() {
	c := ctx.Background()
	res, err := s.im.Deposit(c, mockB, "500000000000000000000")
	s.Require().NoError(err)
	s.Equal(domain.Wei("500000000000000000000"), res)

	res, err = s.im.Deposit(c, mockB, "1")
	s.Require().NoError(err)
	s.Equal(domain.Wei("500000000000000000001"), res)

	_, err = s.im.Deposit(c, mockB, "1.5")
	s.Equal(domain.ErrBadParamInput, err)

	b, err := s.im.BalanceOf(c, domain.Address("0xef88c71f5be29c4b30bf89625bd9be8f263e940c"))
	s.NoError(err)
	s.Equal(domain.ZeroWei, b)
}
