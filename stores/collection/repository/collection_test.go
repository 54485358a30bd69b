package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/collection"
	"github.com/x-xyz/launchpad/service/query"
	"github.com/x-xyz/launchpad/service/query/querytest"
)

const (
	mockAddress = domain.Address("0x9A38DEC0590ABC8C883D72E52391090E948DDF12")
	mockOwner   = domain.Address("0xc37c41601bc88c91b6569c701f08d37fa0f565f0")
	mockOther   = domain.Address("0xef88c71f5be29c4b30bf89625bd9be8f263e940c")
)

type collectionSuite struct {
	suite.Suite

	query query.Mongo
	im    collection.Repo
}

func TestCollectionSuite(t *testing.T) {
	suite.Run(t, new(collectionSuite))
}

func (s *collectionSuite) SetupTest() {
	q, _ := querytest.Connect(s.T(), domain.TableCollections)
	s.Require().NoError(q.EnsureIndexes(ctx.Background(), domain.TableCollections, Indexes))
	s.query = q
	s.im = NewCollection(q)

	s.Require().NoError(s.im.Insert(ctx.Background(), &collection.Collection{
		Address:   mockAddress,
		Name:      "collection1",
		Symbol:    "C1",
		Owner:     mockOwner,
		CreatedAt: time.Now().Truncate(time.Millisecond).UTC(),
	}))
}

func (s *collectionSuite) TestInsertDuplicate() {
	err := s.im.Insert(ctx.Background(), &collection.Collection{Address: mockAddress.ToLower(), Owner: mockOther})
	s.Equal(query.ErrDuplicateKey, err)
}

func (s *collectionSuite) TestFindAll() {
	s.Require().NoError(s.im.Insert(ctx.Background(), &collection.Collection{
		Address: mockOther,
		Name:    "collection2",
		Owner:   mockOther,
	}))

	res, err := s.im.FindAll(ctx.Background(), collection.WithOwner(mockOwner))
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal(mockAddress.ToLower(), res[0].Address)

	res, err = s.im.FindAll(ctx.Background())
	s.Require().NoError(err)
	s.Len(res, 2)
}

func (s *collectionSuite) TestUpdate() {
	uri := "ipfs://base"
	dropId := int64(2)
	s.Require().NoError(s.im.Update(ctx.Background(), mockAddress, &collection.UpdatePayload{
		BaseURI:       &uri,
		CurrentDropId: &dropId,
	}))

	res, err := s.im.FindOne(ctx.Background(), mockAddress)
	s.Require().NoError(err)
	s.Equal(uri, res.BaseURI)
	s.Equal(dropId, res.CurrentDropId)
	s.Equal(mockOwner, res.Owner)

	owner := domain.Address("0xEF88C71F5BE29C4B30BF89625BD9BE8F263E940C")
	s.Require().NoError(s.im.Update(ctx.Background(), mockAddress, &collection.UpdatePayload{Owner: &owner}))
	res, err = s.im.FindOne(ctx.Background(), mockAddress)
	s.Require().NoError(err)
	s.Equal(mockOther, res.Owner)

	err = s.im.Update(ctx.Background(), mockOther, &collection.UpdatePayload{BaseURI: &uri})
	s.Equal(domain.ErrNotFound, err)
}
