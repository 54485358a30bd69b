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
	"github.com/x-xyz/launchpad/domain/custody"
	mCustody "github.com/x-xyz/launchpad/domain/custody/mocks"
	"github.com/x-xyz/launchpad/domain/event"
	mEvent "github.com/x-xyz/launchpad/domain/event/mocks"
	mDomain "github.com/x-xyz/launchpad/domain/mocks"
	"github.com/x-xyz/launchpad/domain/sequence"
	mSequence "github.com/x-xyz/launchpad/domain/sequence/mocks"
)

const (
	mockOwner      = domain.Address("0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")
	mockCollection = domain.Address("0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d")
	mockBuyer      = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
)

type custodySuite struct {
	suite.Suite

	repo       *mCustody.Repo
	collection *mCollection.Repo
	sequence   *mSequence.Repo
	event      *mEvent.Usecase
	tx         *mDomain.TxRunner
	im         custody.Usecase

	now       time.Time
	tokenType domain.TokenType
	counter   int64
}

func TestCustodySuite(t *testing.T) {
	suite.Run(t, new(custodySuite))
}

func (s *custodySuite) SetupTest() {
	s.repo = &mCustody.Repo{}
	s.collection = &mCollection.Repo{}
	s.sequence = &mSequence.Repo{}
	s.event = &mEvent.Usecase{}
	s.tx = &mDomain.TxRunner{}

	s.im = New(&CustodyUseCaseCfg{
		Repo:           s.repo,
		CollectionRepo: s.collection,
		SequenceRepo:   s.sequence,
		EventUC:        s.event,
		Tx:             s.tx,
	})

	s.now = time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return s.now }
	s.tokenType = domain.TokenTypeMultiOwner
	s.counter = 0

	s.tx.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, fn func(ctx.Ctx) error) error { return fn(c) })
	s.collection.On("FindOne", mock.Anything, mockCollection).Return(
		func(c ctx.Ctx, a domain.Address) *collection.Collection {
			return &collection.Collection{Address: mockCollection, Owner: mockOwner, TokenType: s.tokenType}
		}, nil)
	s.sequence.On("Next", mock.Anything, sequence.TokenId(mockCollection), mock.Anything).Return(
		func(c ctx.Ctx, name string, n int64) int64 {
			s.counter += n
			return s.counter
		}, nil)
	s.event.On("Record", mock.Anything, mock.Anything).Return(nil)
	s.event.On("Publish", mock.Anything, mock.Anything).Return()
}

func (s *custodySuite) TestMintUnits() {
	var inserted []*custody.Token
	s.repo.On("InsertTokens", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, tokens []*custody.Token) error {
			inserted = append(inserted, tokens...)
			return nil
		})

	ids, err := s.im.MintUnits(ctx.Background(), mockCollection, mockBuyer, 3)
	s.Require().NoError(err)
	s.Equal([]domain.TokenId{0, 1, 2}, ids)

	ids, err = s.im.MintUnits(ctx.Background(), mockCollection, mockOwner, 2)
	s.Require().NoError(err)
	s.Equal([]domain.TokenId{3, 4}, ids)

	s.Len(inserted, 5)
	s.Equal(mockBuyer, inserted[2].Owner)
	s.Equal(mockOwner, inserted[3].Owner)
	s.Equal(s.now, inserted[4].CreatedAt)
}

func (s *custodySuite) TestMintUnitsBadInput() {
	_, err := s.im.MintUnits(ctx.Background(), mockCollection, mockBuyer, 0)
	s.Equal(domain.ErrBadParamInput, err)

	_, err = s.im.MintUnits(ctx.Background(), mockCollection, domain.EmptyAddress, 1)
	s.Equal(domain.ErrInvalidAddress, err)

	s.repo.AssertNotCalled(s.T(), "InsertTokens", mock.Anything, mock.Anything)
}

func (s *custodySuite) TestMintSupply() {
	s.counter = 7
	s.repo.On("InsertSupply", mock.Anything, mock.Anything).Return(nil).Once()
	s.repo.On("IncreaseHolding", mock.Anything, mockCollection, domain.TokenId(7), mockOwner, int64(100)).Return(nil).Once()

	res, err := s.im.MintSupply(ctx.Background(), mockOwner, mockCollection, &custody.MintSupplyParams{Amount: 100, URI: "ipfs://supply"})
	s.Require().NoError(err)
	s.Equal(domain.TokenId(7), res.TokenId)
	s.Equal(int64(100), res.TotalSupply)
	s.Equal("ipfs://supply", res.URI)
	s.Equal(mockOwner, res.Creator)

	s.event.AssertCalled(s.T(), "Record", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Type == event.TypeSupplyMinted && e.Quantity == 100 && e.TokenIds[0] == 7
	}))
	s.event.AssertNumberOfCalls(s.T(), "Publish", 1)
	s.repo.AssertExpectations(s.T())
}

func (s *custodySuite) TestMintSupplyRejected() {
	_, err := s.im.MintSupply(ctx.Background(), mockBuyer, mockCollection, &custody.MintSupplyParams{Amount: 1})
	s.Equal(domain.ErrUnauthorized, err)

	_, err = s.im.MintSupply(ctx.Background(), mockOwner, mockCollection, &custody.MintSupplyParams{Amount: 0})
	s.Equal(domain.ErrBadParamInput, err)

	s.tokenType = domain.TokenTypeSingleOwner
	_, err = s.im.MintSupply(ctx.Background(), mockOwner, mockCollection, &custody.MintSupplyParams{Amount: 1})
	s.Equal(domain.ErrUnsupportedTokenType, err)

	s.event.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *custodySuite) TestTransferSingleOwner() {
	s.repo.On("MoveToken", mock.Anything, mockCollection, domain.TokenId(3), mockOwner, mockBuyer).Return(nil).Once()
	s.repo.On("MoveToken", mock.Anything, mockCollection, domain.TokenId(4), mockBuyer, mockOwner).Return(domain.ErrNotTokenOwner).Once()

	s.NoError(s.im.TransferUnits(ctx.Background(), mockCollection, mockOwner, mockBuyer, 3, 1, domain.TokenTypeSingleOwner))
	s.Equal(domain.ErrNotTokenOwner, s.im.TransferUnits(ctx.Background(), mockCollection, mockBuyer, mockOwner, 4, 1, domain.TokenTypeSingleOwner))
	s.Equal(domain.ErrBadParamInput, s.im.TransferUnits(ctx.Background(), mockCollection, mockOwner, mockBuyer, 3, 2, domain.TokenTypeSingleOwner))
	s.Equal(domain.ErrInvalidAddress, s.im.TransferUnits(ctx.Background(), mockCollection, mockOwner, domain.EmptyAddress, 3, 1, domain.TokenTypeSingleOwner))
	s.repo.AssertExpectations(s.T())
}

func (s *custodySuite) TestTransferMultiOwner() {
	s.repo.On("DecreaseHolding", mock.Anything, mockCollection, domain.TokenId(1), mockOwner, int64(5)).Return(nil).Once()
	s.repo.On("IncreaseHolding", mock.Anything, mockCollection, domain.TokenId(1), mockBuyer, int64(5)).Return(nil).Once()
	s.NoError(s.im.TransferUnits(ctx.Background(), mockCollection, mockOwner, mockBuyer, 1, 5, domain.TokenTypeMultiOwner))

	s.repo.On("DecreaseHolding", mock.Anything, mockCollection, domain.TokenId(1), mockBuyer, int64(6)).Return(domain.ErrInsufficientHoldings).Once()
	s.Equal(domain.ErrInsufficientHoldings, s.im.TransferUnits(ctx.Background(), mockCollection, mockBuyer, mockOwner, 1, 6, domain.TokenTypeMultiOwner))

	s.repo.AssertNumberOfCalls(s.T(), "IncreaseHolding", 1)
}

func (s *custodySuite) TestReads() {
	s.repo.On("FindToken", mock.Anything, mockCollection, domain.TokenId(0)).Return(&custody.Token{Collection: mockCollection, TokenId: 0, Owner: mockOwner}, nil)
	s.repo.On("FindToken", mock.Anything, mockCollection, domain.TokenId(9)).Return(nil, domain.ErrNotFound)
	s.repo.On("FindSupply", mock.Anything, mockCollection, domain.TokenId(0)).Return(nil, domain.ErrNotFound)
	s.repo.On("FindSupply", mock.Anything, mockCollection, domain.TokenId(1)).Return(&custody.Supply{TotalSupply: 50, URI: "ipfs://one"}, nil)
	s.repo.On("GetHolding", mock.Anything, mockCollection, domain.TokenId(1), mockBuyer).Return(int64(20), nil)

	c := ctx.Background()

	owner, err := s.im.OwnerOf(c, mockCollection, 0)
	s.NoError(err)
	s.Equal(mockOwner, owner)

	_, err = s.im.OwnerOf(c, mockCollection, 9)
	s.Equal(domain.ErrNotFound, err)

	n, err := s.im.BalanceOf(c, mockCollection, mockOwner, 0, domain.TokenTypeSingleOwner)
	s.NoError(err)
	s.Equal(int64(1), n)

	n, err = s.im.BalanceOf(c, mockCollection, mockBuyer, 0, domain.TokenTypeSingleOwner)
	s.NoError(err)
	s.Equal(int64(0), n)

	n, err = s.im.BalanceOf(c, mockCollection, mockBuyer, 9, domain.TokenTypeSingleOwner)
	s.NoError(err)
	s.Equal(int64(0), n)

	n, err = s.im.BalanceOf(c, mockCollection, mockBuyer, 1, domain.TokenTypeMultiOwner)
	s.NoError(err)
	s.Equal(int64(20), n)

	n, err = s.im.TotalSupply(c, mockCollection, 1)
	s.NoError(err)
	s.Equal(int64(50), n)

	n, err = s.im.TotalSupply(c, mockCollection, 0)
	s.NoError(err)
	s.Equal(int64(1), n)

	uri, err := s.im.URI(c, mockCollection, 1)
	s.NoError(err)
	s.Equal("ipfs://one", uri)
}

func (s *custodySuite) TestApproval() {
	s.repo.On("SetApproval", mock.Anything, &custody.Approval{
		Collection: mockCollection,
		Owner:      mockOwner,
		Operator:   mockBuyer,
		Approved:   true,
	}).Return(nil).Once()
	s.repo.On("IsApproved", mock.Anything, mockCollection, mockOwner, mockBuyer).Return(true, nil).Once()

	c := ctx.Background()
	s.NoError(s.im.SetApprovalForAll(c, mockOwner, mockCollection, mockBuyer, true))

	ok, err := s.im.IsApprovedForAll(c, mockCollection, mockOwner, mockBuyer)
	s.NoError(err)
	s.True(ok)

	s.Equal(domain.ErrBadParamInput, s.im.SetApprovalForAll(c, mockOwner, mockCollection, mockOwner, true))
	s.Equal(domain.ErrInvalidAddress, s.im.SetApprovalForAll(c, mockOwner, mockCollection, domain.EmptyAddress, true))
	s.repo.AssertExpectations(s.T())
}
