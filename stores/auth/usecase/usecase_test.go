package usecase_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	mAccount "github.com/x-xyz/launchpad/domain/account/mocks"
	"github.com/x-xyz/launchpad/stores/auth/usecase"
)

const mockAddress = domain.Address("0x6AC7EA33F8831EA9DCC53393AAA88B25A785DBF0")

func TestSignAndParseToken(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	mockAccountUC.On("ValidateSignature", mock.Anything, mockAddress, "0xsig").Return(nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)
	tkn, err := u.SignToken(ctx, mockAddress, "0xsig")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, mockAddress.ToLowerStr(), ads)
}

func TestSignTokenInvalidSignature(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	mockAccountUC.On("ValidateSignature", mock.Anything, mockAddress, "0xbad").Return(domain.ErrInvalidSignature)

	u := usecase.New("jwt-secret", mockAccountUC)
	tkn, err := u.SignToken(ctx.Background(), mockAddress, "0xbad")
	assert.Equal(t, domain.ErrInvalidSignature, err)
	assert.Empty(t, tkn)
}

func TestParseTokenRejected(t *testing.T) {
	u := usecase.New("jwt-secret", &mAccount.Usecase{})

	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.JwtCustomClaims{
		Address:        "0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}).SignedString([]byte("other-secret"))
	assert.NoError(t, err)
	_, err = u.ParseToken(ctx.Background(), other)
	assert.Error(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.JwtCustomClaims{
		Address:        "0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Hour).Unix()},
	}).SignedString([]byte("jwt-secret"))
	assert.NoError(t, err)
	_, err = u.ParseToken(ctx.Background(), expired)
	assert.Error(t, err)
}
