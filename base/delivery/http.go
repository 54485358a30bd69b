package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var errStatus = []struct {
	status int
	errs   []error
}{
	{http.StatusForbidden, []error{domain.ErrUnauthorized}},
	{http.StatusNotFound, []error{domain.ErrNotFound, query.ErrNotFound}},
	{http.StatusPaymentRequired, []error{
		domain.ErrInsufficientPayment,
		domain.ErrExcessPayment,
		domain.ErrInsufficientFunds,
	}},
	{http.StatusConflict, []error{
		domain.ErrCampaignOverlap,
		domain.ErrDropActiveOrPending,
		domain.ErrListingInactive,
		domain.ErrSupplyExceeded,
		domain.ErrWalletLimitExceeded,
		domain.ErrSellerNoLongerHolds,
		domain.ErrAuthorizationRevoked,
		domain.ErrLockTimeout,
	}},
	{http.StatusUnprocessableEntity, []error{
		domain.ErrDropNotStarted,
		domain.ErrDropEnded,
		domain.ErrNotWhitelisted,
	}},
	{http.StatusBadRequest, []error{
		domain.ErrInvalidWindow,
		domain.ErrBadParamInput,
		domain.ErrInvalidAddress,
		domain.ErrInvalidSignature,
		domain.ErrInvalidNonce,
		domain.ErrNotApproved,
		domain.ErrInsufficientHoldings,
		domain.ErrNotTokenOwner,
		domain.ErrUnsupportedTokenType,
		domain.ErrInvalidNumberFormat,
	}},
}

// StatusOf maps a domain error to the http status it is reported with
func StatusOf(err error) int {
	for _, s := range errStatus {
		for _, e := range s.errs {
			if errors.Is(err, e) {
				return s.status
			}
		}
	}
	return http.StatusInternalServerError
}

// MakeErrResp reports err with the status of its kind
func MakeErrResp(c echo.Context, err error) error {
	return MakeJsonResp(c, StatusOf(err), err)
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
