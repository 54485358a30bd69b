package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/collection"
	mCollection "github.com/x-xyz/launchpad/domain/collection/mocks"
	mCustody "github.com/x-xyz/launchpad/domain/custody/mocks"
	"github.com/x-xyz/launchpad/domain/event"
	mEvent "github.com/x-xyz/launchpad/domain/event/mocks"
	"github.com/x-xyz/launchpad/domain/listing"
	mListing "github.com/x-xyz/launchpad/domain/listing/mocks"
	mDomain "github.com/x-xyz/launchpad/domain/mocks"
	mPayment "github.com/x-xyz/launchpad/domain/payment/mocks"
	"github.com/x-xyz/launchpad/domain/sequence"
	mSequence "github.com/x-xyz/launchpad/domain/sequence/mocks"
)

const (
	mockCollection = domain.Address("0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d")
	mockSeller     = domain.Address("0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")
	mockBuyer      = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	mockOperator   = domain.Address("0x343c43a37d37dff08ae8c4a11544c718abb4fcf8")
	mockMulti      = domain.Address("0x5b3d4b59e7a3a4c2ff5cbb0ffd1b31f8c0ab7e22")
	mockPrice      = domain.Wei("1000000000000000000")
)

type listingSuite struct {
	suite.Suite

	repo       *mListing.Repo
	collection *mCollection.Repo
	sequence   *mSequence.Repo
	custody    *mCustody.Usecase
	payment    *mPayment.Usecase
	event      *mEvent.Usecase
	tx         *mDomain.TxRunner
	locker     *mDomain.Locker
	im         listing.Usecase

	now      time.Time
	listings map[int64]*listing.Listing
	counter  int64
	held     int64
	approved bool
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	s.repo = &mListing.Repo{}
	s.collection = &mCollection.Repo{}
	s.sequence = &mSequence.Repo{}
	s.custody = &mCustody.Usecase{}
	s.payment = &mPayment.Usecase{}
	s.event = &mEvent.Usecase{}
	s.tx = &mDomain.TxRunner{}
	s.locker = &mDomain.Locker{}

	s.im = New(&ListingUseCaseCfg{
		Repo:           s.repo,
		CollectionRepo: s.collection,
		SequenceRepo:   s.sequence,
		CustodyUC:      s.custody,
		PaymentUC:      s.payment,
		EventUC:        s.event,
		Tx:             s.tx,
		Locker:         s.locker,
		Operator:       mockOperator,
	})

	s.now = time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return s.now }
	s.listings = map[int64]*listing.Listing{}
	s.counter = 0
	s.held = 1
	s.approved = true

	s.locker.On("WithLock", mock.Anything, mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, key string, fn func() error) error { return fn() })
	// a failed transaction restores the listings it touched
	s.tx.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, fn func(ctx.Ctx) error) error {
			snapshot := map[int64]listing.Listing{}
			for id, l := range s.listings {
				snapshot[id] = *l
			}
			err := fn(c)
			if err != nil {
				s.listings = map[int64]*listing.Listing{}
				for id, l := range snapshot {
					cp := l
					s.listings[id] = &cp
				}
			}
			return err
		})
	s.collection.On("FindOne", mock.Anything, mockCollection).Return(
		&collection.Collection{Address: mockCollection, Owner: mockSeller, TokenType: domain.TokenTypeSingleOwner}, nil)
	s.sequence.On("Next", mock.Anything, sequence.Listing, int64(1)).Return(
		func(c ctx.Ctx, name string, n int64) int64 {
			s.counter += n
			return s.counter
		}, nil)
	s.custody.On("BalanceOf", mock.Anything, mockCollection, mockSeller, mock.Anything, domain.TokenTypeSingleOwner).Return(
		func(c ctx.Ctx, a, o domain.Address, id domain.TokenId, t domain.TokenType) int64 { return s.held }, nil)
	s.custody.On("IsApprovedForAll", mock.Anything, mockCollection, mockSeller, mockOperator).Return(
		func(c ctx.Ctx, a, o, op domain.Address) bool { return s.approved }, nil)

	s.repo.On("Insert", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, l *listing.Listing) error {
			cp := *l
			s.listings[l.Id] = &cp
			return nil
		})
	s.repo.On("FindOne", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, id int64) *listing.Listing {
			if l, ok := s.listings[id]; ok {
				cp := *l
				return &cp
			}
			return nil
		},
		func(c ctx.Ctx, id int64) error {
			if _, ok := s.listings[id]; ok {
				return nil
			}
			return domain.ErrNotFound
		})
	s.repo.On("Close", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, id int64, status listing.Status, buyer domain.Address, at time.Time) error {
			l := s.listings[id]
			if !l.Active {
				return domain.ErrListingInactive
			}
			l.Active = false
			l.Status = status
			l.Buyer = buyer
			l.UpdatedAt = at
			return nil
		})

	s.event.On("Record", mock.Anything, mock.Anything).Return(nil)
	s.event.On("Publish", mock.Anything, mock.Anything).Return()
}

func (s *listingSuite) list() *listing.Listing {
	res, err := s.im.List(ctx.Background(), mockSeller, &listing.CreateParams{
		ContractAddress: mockCollection,
		TokenId:         3,
		Amount:          1,
		Price:           mockPrice,
		TokenType:       domain.TokenTypeSingleOwner,
	})
	s.Require().NoError(err)
	return res
}

func (s *listingSuite) TestList() {
	first := s.list()
	s.Equal(int64(0), first.Id)
	s.True(first.Active)
	s.Equal(listing.StatusActive, first.Status)
	s.Equal(mockSeller, first.Seller)
	s.Equal(s.now, first.CreatedAt)

	second := s.list()
	s.Equal(int64(1), second.Id)

	s.event.AssertCalled(s.T(), "Record", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeListed && *e.ListingId == 1 && e.Account == mockSeller
	}))
	s.event.AssertNumberOfCalls(s.T(), "Publish", 2)
}

func (s *listingSuite) TestListRejected() {
	c := ctx.Background()
	params := func() *listing.CreateParams {
		return &listing.CreateParams{
			ContractAddress: mockCollection,
			TokenId:         3,
			Amount:          1,
			Price:           mockPrice,
			TokenType:       domain.TokenTypeSingleOwner,
		}
	}

	p := params()
	p.Amount = 2
	_, err := s.im.List(c, mockSeller, p)
	s.Equal(domain.ErrBadParamInput, err)

	p = params()
	p.TokenType = domain.TokenTypeMultiOwner
	_, err = s.im.List(c, mockSeller, p)
	s.Equal(domain.ErrBadParamInput, err)

	p = params()
	p.Price = "-1"
	_, err = s.im.List(c, mockSeller, p)
	s.Equal(domain.ErrBadParamInput, err)

	s.held = 0
	_, err = s.im.List(c, mockSeller, params())
	s.Equal(domain.ErrInsufficientHoldings, err)

	s.held = 1
	s.approved = false
	_, err = s.im.List(c, mockSeller, params())
	s.Equal(domain.ErrNotApproved, err)

	s.Empty(s.listings)
	s.sequence.AssertNotCalled(s.T(), "Next", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestBuy() {
	l := s.list()
	s.custody.On("TransferUnits", mock.Anything, mockCollection, mockSeller, mockBuyer, domain.TokenId(3), int64(1), domain.TokenTypeSingleOwner).Return(nil).Once()
	s.payment.On("Transfer", mock.Anything, mockBuyer, mockSeller, mockPrice).Return(nil).Once()

	res, err := s.im.Buy(ctx.Background(), mockBuyer, l.Id, mockPrice)
	s.Require().NoError(err)
	s.False(res.Active)
	s.Equal(listing.StatusSold, res.Status)
	s.Equal(mockBuyer, res.Buyer)

	stored := s.listings[l.Id]
	s.False(stored.Active)
	s.Equal(listing.StatusSold, stored.Status)

	s.event.AssertCalled(s.T(), "Record", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeListingSold && e.Account == mockBuyer && e.Counterparty == mockSeller
	}))
	s.custody.AssertExpectations(s.T())
	s.payment.AssertExpectations(s.T())

	_, err = s.im.Buy(ctx.Background(), mockBuyer, l.Id, mockPrice)
	s.Equal(domain.ErrListingInactive, err)
}

func (s *listingSuite) TestBuyRejected() {
	l := s.list()
	c := ctx.Background()

	_, err := s.im.Buy(c, mockSeller, l.Id, mockPrice)
	s.Equal(domain.ErrBadParamInput, err)

	_, err = s.im.Buy(c, mockBuyer, l.Id, "999999999999999999")
	s.Equal(domain.ErrInsufficientPayment, err)

	_, err = s.im.Buy(c, mockBuyer, l.Id, "1000000000000000001")
	s.Equal(domain.ErrExcessPayment, err)

	_, err = s.im.Buy(c, mockBuyer, 42, mockPrice)
	s.Equal(domain.ErrNotFound, err)

	s.True(s.listings[l.Id].Active)
	s.custody.AssertNotCalled(s.T(), "TransferUnits", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestBuyInvalidated() {
	l := s.list()
	s.held = 0

	_, err := s.im.Buy(ctx.Background(), mockBuyer, l.Id, mockPrice)
	s.Equal(domain.ErrSellerNoLongerHolds, err)
	s.False(s.listings[l.Id].Active)
	s.Equal(listing.StatusInvalidated, s.listings[l.Id].Status)
	s.event.AssertCalled(s.T(), "Publish", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeListingInvalidated
	}))

	_, err = s.im.Buy(ctx.Background(), mockBuyer, l.Id, mockPrice)
	s.Equal(domain.ErrListingInactive, err)
	s.payment.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestBuyRevoked() {
	l := s.list()
	s.approved = false

	_, err := s.im.Buy(ctx.Background(), mockBuyer, l.Id, mockPrice)
	s.Equal(domain.ErrAuthorizationRevoked, err)
	s.Equal(listing.StatusInvalidated, s.listings[l.Id].Status)
}

func (s *listingSuite) TestBuyMultiOwner() {
	s.collection.On("FindOne", mock.Anything, mockMulti).Return(
		&collection.Collection{Address: mockMulti, Owner: mockSeller, TokenType: domain.TokenTypeMultiOwner}, nil)
	s.custody.On("BalanceOf", mock.Anything, mockMulti, mockSeller, domain.TokenId(9), domain.TokenTypeMultiOwner).Return(int64(12), nil)
	s.custody.On("IsApprovedForAll", mock.Anything, mockMulti, mockSeller, mockOperator).Return(true, nil)
	s.custody.On("TransferUnits", mock.Anything, mockMulti, mockSeller, mockBuyer, domain.TokenId(9), int64(5), domain.TokenTypeMultiOwner).Return(nil).Once()
	s.payment.On("Transfer", mock.Anything, mockBuyer, mockSeller, mockPrice).Return(nil).Once()

	l, err := s.im.List(ctx.Background(), mockSeller, &listing.CreateParams{
		ContractAddress: mockMulti,
		TokenId:         9,
		Amount:          5,
		Price:           mockPrice,
		TokenType:       domain.TokenTypeMultiOwner,
	})
	s.Require().NoError(err)
	s.Equal(int64(5), l.Amount)

	res, err := s.im.Buy(ctx.Background(), mockBuyer, l.Id, mockPrice)
	s.Require().NoError(err)
	s.Equal(listing.StatusSold, res.Status)
	s.Equal(mockBuyer, res.Buyer)
	s.False(s.listings[l.Id].Active)
	s.Equal(listing.StatusSold, s.listings[l.Id].Status)

	// checked on list and again on buy
	s.custody.AssertNumberOfCalls(s.T(), "BalanceOf", 2)
	s.custody.AssertCalled(s.T(), "BalanceOf", mock.Anything, mockMulti, mockSeller, domain.TokenId(9), domain.TokenTypeMultiOwner)
	s.custody.AssertCalled(s.T(), "TransferUnits", mock.Anything, mockMulti, mockSeller, mockBuyer, domain.TokenId(9), int64(5), domain.TokenTypeMultiOwner)
	s.payment.AssertCalled(s.T(), "Transfer", mock.Anything, mockBuyer, mockSeller, mockPrice)
	s.event.AssertCalled(s.T(), "Record", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeListingSold && e.Counterparty == mockSeller
	}))
}

func (s *listingSuite) TestBuyInsufficientFunds() {
	l := s.list()
	s.custody.On("TransferUnits", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.payment.On("Transfer", mock.Anything, mockBuyer, mockSeller, mockPrice).Return(domain.ErrInsufficientFunds).Once()

	_, err := s.im.Buy(ctx.Background(), mockBuyer, l.Id, mockPrice)
	s.Equal(domain.ErrInsufficientFunds, err)

	// the sold flag set inside the transaction is rolled back
	stored := s.listings[l.Id]
	s.True(stored.Active)
	s.Equal(listing.StatusActive, stored.Status)
	s.Empty(stored.Buyer)
	s.event.AssertNotCalled(s.T(), "Record", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeListingSold
	}))
	// only the Listed publish
	s.event.AssertNumberOfCalls(s.T(), "Publish", 1)

	s.payment.On("Transfer", mock.Anything, mockBuyer, mockSeller, mockPrice).Return(nil).Once()
	res, err := s.im.Buy(ctx.Background(), mockBuyer, l.Id, mockPrice)
	s.Require().NoError(err)
	s.Equal(listing.StatusSold, res.Status)
}

func (s *listingSuite) TestCancel() {
	l := s.list()
	c := ctx.Background()

	_, err := s.im.Cancel(c, mockBuyer, l.Id)
	s.Equal(domain.ErrUnauthorized, err)

	res, err := s.im.Cancel(c, mockSeller, l.Id)
	s.Require().NoError(err)
	s.Equal(listing.StatusCancelled, res.Status)
	s.False(s.listings[l.Id].Active)

	_, err = s.im.Cancel(c, mockSeller, l.Id)
	s.Equal(domain.ErrListingInactive, err)

	s.locker.AssertCalled(s.T(), "WithLock", mock.Anything, "listing:0", mock.Anything)
}

func (s *listingSuite) TestFindAll() {
	s.repo.On("FindAll", mock.Anything, mock.Anything).Return([]*listing.Listing{{Id: 4}}, nil).Once()
	s.repo.On("Count", mock.Anything, mock.Anything).Return(7, nil).Once()

	res, count, err := s.im.FindAll(ctx.Background(), listing.WithActive(true))
	s.Require().NoError(err)
	s.Len(res, 1)
	s.Equal(7, count)
}
