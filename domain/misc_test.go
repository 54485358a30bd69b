package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
)

type miscSuite struct {
	suite.Suite
}

func TestMiscSuite(t *testing.T) {
	suite.Run(t, new(miscSuite))
}

func (s *miscSuite) TestAddress() {
	a := Address("0xABCdef0000000000000000000000000000000001")
	s.Equal(Address("0xabcdef0000000000000000000000000000000001"), a.ToLower())
	s.True(a.Equals("0xabcdef0000000000000000000000000000000001"))
	s.False(a.IsZero())
	s.True(Address("").IsZero())
	s.True(EmptyAddress.IsZero())
}

func (s *miscSuite) TestParseWei() {
	w, err := ParseWei("10000000000000000")
	s.NoError(err)
	s.Equal(Wei("10000000000000000"), w)

	for _, bad := range []string{"-1", "1.5", "0x10", "abc"} {
		_, err := ParseWei(bad)
		s.ErrorIs(err, ErrInvalidNumberFormat, bad)
	}

	b, err := Wei("").BigInt()
	s.NoError(err)
	s.Equal(0, b.Sign())
}

func (s *miscSuite) TestMul() {
	w, err := Wei("10000000000000000").Mul(5)
	s.NoError(err)
	s.Equal(Wei("50000000000000000"), w)

	huge := WeiFromBig(new(big.Int).Lsh(big.NewInt(1), 200))
	w, err = huge.Mul(3)
	s.NoError(err)
	s.Equal(new(big.Int).Mul(new(big.Int).Lsh(big.NewInt(1), 200), big.NewInt(3)).String(), string(w))
}

func (s *miscSuite) TestEther() {
	s.Equal("0.01", Wei("10000000000000000").Ether())
	s.Equal("1", Wei("1000000000000000000").Ether())
	s.Equal("0", ZeroWei.Ether())
}

func (s *miscSuite) TestPayableCheck() {
	s.NoError(PayableCheck("500", "500"))
	s.ErrorIs(PayableCheck("499", "500"), ErrInsufficientPayment)
	s.ErrorIs(PayableCheck("501", "500"), ErrExcessPayment)
	s.ErrorIs(PayableCheck("x", "500"), ErrBadParamInput)
}

func (s *miscSuite) TestTokenType() {
	s.True(TokenTypeSingleOwner.IsValid())
	s.True(TokenTypeMultiOwner.IsValid())
	s.False(TokenType(721).IsValid())
	s.Equal("multiOwner", TokenTypeMultiOwner.String())
}
