package domain

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// TokenType selects the custody model of a collection
type TokenType int

const (
	// TokenTypeSingleOwner is the erc721 style model, one holder per token
	TokenTypeSingleOwner TokenType = 0
	// TokenTypeMultiOwner is the erc1155 style model, many holders per token id
	TokenTypeMultiOwner TokenType = 1
)

func (t TokenType) IsValid() bool {
	return t == TokenTypeSingleOwner || t == TokenTypeMultiOwner
}

func (t TokenType) String() string {
	switch t {
	case TokenTypeSingleOwner:
		return "singleOwner"
	case TokenTypeMultiOwner:
		return "multiOwner"
	}
	return "unknown"
}

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsZero reports whether a is empty or the zero address
func (a Address) IsZero() bool {
	return a.IsEmpty() || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId int64

func (i TokenId) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Wei is a non-negative integer amount of the native currency, kept as a decimal string
type Wei string

const ZeroWei = Wei("0")

// ParseWei validates s and returns it as a Wei
func ParseWei(s string) (Wei, error) {
	if _, err := Wei(s).BigInt(); err != nil {
		return "", err
	}
	return Wei(s), nil
}

func (w Wei) BigInt() (*big.Int, error) {
	if w == "" {
		return new(big.Int), nil
	}
	d, err := decimal.NewFromString(string(w))
	if err != nil {
		return nil, ErrInvalidNumberFormat
	}
	if d.IsNegative() || !d.Equal(d.Truncate(0)) {
		return nil, ErrInvalidNumberFormat
	}
	return d.BigInt(), nil
}

// Mul returns w * n
func (w Wei) Mul(n int64) (Wei, error) {
	b, err := w.BigInt()
	if err != nil {
		return "", err
	}
	return WeiFromBig(b.Mul(b, big.NewInt(n))), nil
}

// Cmp compares two amounts like big.Int.Cmp
func (w Wei) Cmp(o Wei) (int, error) {
	a, err := w.BigInt()
	if err != nil {
		return 0, err
	}
	b, err := o.BigInt()
	if err != nil {
		return 0, err
	}
	return a.Cmp(b), nil
}

// Ether formats w in ether units, for display only
func (w Wei) Ether() string {
	b, err := w.BigInt()
	if err != nil {
		return string(w)
	}
	return decimal.NewFromBigInt(b, -18).String()
}

func WeiFromBig(b *big.Int) Wei {
	return Wei(b.String())
}

// PayableCheck compares the attached value with the exact cost
func PayableCheck(value, cost Wei) error {
	c, err := value.Cmp(cost)
	if err != nil {
		return ErrBadParamInput
	}
	switch {
	case c < 0:
		return ErrInsufficientPayment
	case c > 0:
		return ErrExcessPayment
	}
	return nil
}
