package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address - real address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
		{
			desc:       "not hex",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a93801395zz",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsValidWei() {
	s.True(IsValidWei("0"))
	s.True(IsValidWei("100000000000000000"))
	s.False(IsValidWei("-1"))
	s.False(IsValidWei("0.5"))
	s.False(IsValidWei("abc"))
	s.False(IsValidWei(""))
}

func (s *ValidatorTestSuite) TestStructTags() {
	type params struct {
		Owner string `validate:"required,address"`
		Price string `validate:"required,wei"`
	}
	v := NewCustomValidator(validator.New())

	s.NoError(v.Validate(&params{Owner: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", Price: "10"}))
	s.Error(v.Validate(&params{Owner: "0x01", Price: "10"}))
	s.Error(v.Validate(&params{Owner: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", Price: "1.5"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
