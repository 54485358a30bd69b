package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/launchpad/domain"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrUnauthorized, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrInsufficientPayment, http.StatusPaymentRequired},
		{domain.ErrExcessPayment, http.StatusPaymentRequired},
		{domain.ErrCampaignOverlap, http.StatusConflict},
		{domain.ErrSupplyExceeded, http.StatusConflict},
		{domain.ErrDropNotStarted, http.StatusUnprocessableEntity},
		{domain.ErrNotWhitelisted, http.StatusUnprocessableEntity},
		{domain.ErrInvalidWindow, http.StatusBadRequest},
		{xerrors.Errorf("mint: %w", domain.ErrWalletLimitExceeded), http.StatusConflict},
		{xerrors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusOf(tt.err), tt.err.Error())
	}
}

func TestMakeErrResp(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	require.NoError(t, MakeErrResp(c, domain.ErrListingInactive))
	assert.Equal(t, http.StatusConflict, rec.Code)

	res := JsonResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, JsonResponseStatusFail, res.Status)
	assert.Equal(t, domain.ErrListingInactive.Error(), res.Data)
}

func TestMakeJsonResp(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, MakeJsonResp(c, http.StatusOK, map[string]int{"minted": 5}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"minted":5},"status":"success"}`, rec.Body.String())
}
