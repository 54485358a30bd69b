package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/listing"
	"github.com/x-xyz/launchpad/service/query"
	"github.com/x-xyz/launchpad/service/query/querytest"
)

const (
	mockContract = domain.Address("0x9A38DEC0590ABC8C883D72E52391090E948DDF12")
	mockSeller   = domain.Address("0xc37c41601bc88c91b6569c701f08d37fa0f565f0")
	mockBuyer    = domain.Address("0xef88c71f5be29c4b30bf89625bd9be8f263e940c")
)

type listingSuite struct {
	suite.Suite
	im listing.Repo
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	q, _ := querytest.Connect(s.T(), domain.TableListings)
	s.Require().NoError(q.EnsureIndexes(ctx.Background(), domain.TableListings, Indexes))
	s.im = New(q)

	now := time.Now().Truncate(time.Millisecond).UTC()
	for i := int64(0); i < 3; i++ {
		s.Require().NoError(s.im.Insert(ctx.Background(), &listing.Listing{
			Id:              i,
			ContractAddress: mockContract,
			TokenId:         domain.TokenId(i),
			Amount:          1,
			Price:           "1000",
			Seller:          mockSeller,
			Active:          true,
			Status:          listing.StatusActive,
			CreatedAt:       now,
			UpdatedAt:       now,
		}))
	}
}

func (s *listingSuite) TestInsertDuplicate() {
	err := s.im.Insert(ctx.Background(), &listing.Listing{Id: 1, Seller: mockBuyer})
	s.Equal(query.ErrDuplicateKey, err)
}

func (s *listingSuite) TestFindAll() {
	c := ctx.Background()

	res, err := s.im.FindAll(c, listing.WithContractAddress(mockContract), listing.WithPagination(0, 2))
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(int64(2), res[0].Id)
	s.Equal(int64(1), res[1].Id)
	s.Equal(mockContract.ToLower(), res[0].ContractAddress)

	count, err := s.im.Count(c, listing.WithSeller(mockSeller), listing.WithActive(true))
	s.Require().NoError(err)
	s.Equal(3, count)

	_, err = s.im.FindOne(c, 9)
	s.Equal(domain.ErrNotFound, err)
}

func (s *listingSuite) TestClose() {
	c := ctx.Background()
	at := time.Now().Truncate(time.Millisecond).UTC()

	s.Require().NoError(s.im.Close(c, 1, listing.StatusSold, mockBuyer, at))
	s.Equal(domain.ErrListingInactive, s.im.Close(c, 1, listing.StatusCancelled, "", at))

	res, err := s.im.FindOne(c, 1)
	s.Require().NoError(err)
	s.False(res.Active)
	s.Equal(listing.StatusSold, res.Status)
	s.Equal(mockBuyer, res.Buyer)
	s.Equal(at, res.UpdatedAt)

	count, err := s.im.Count(c, listing.WithActive(true))
	s.Require().NoError(err)
	s.Equal(2, count)
}
