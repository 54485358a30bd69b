package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrInvalidNonce     = errors.New("invalid nonce")

	// ErrUnauthorized is returned when the caller is not the owner or seller the action requires
	ErrUnauthorized = errors.New("unauthorized")

	// drop lifecycle
	ErrInvalidWindow        = errors.New("invalid drop window")
	ErrCampaignOverlap      = errors.New("previous drop has not ended")
	ErrDropNotStarted       = errors.New("drop not started")
	ErrDropEnded            = errors.New("drop ended")
	ErrNotWhitelisted       = errors.New("not whitelisted")
	ErrSupplyExceeded       = errors.New("supply exceeded")
	ErrWalletLimitExceeded  = errors.New("wallet mint limit exceeded")
	ErrDropActiveOrPending  = errors.New("drop is active or pending")
	ErrUnsupportedTokenType = errors.New("unsupported token type")

	// payment
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrExcessPayment       = errors.New("payment exceeds price")
	ErrInsufficientFunds   = errors.New("insufficient funds")

	// marketplace
	ErrListingInactive      = errors.New("listing is not active")
	ErrSellerNoLongerHolds  = errors.New("seller no longer holds the listed token")
	ErrAuthorizationRevoked = errors.New("seller revoked marketplace approval")

	// custody
	ErrNotApproved          = errors.New("marketplace is not approved by the owner")
	ErrInsufficientHoldings = errors.New("insufficient token holdings")
	ErrNotTokenOwner        = errors.New("not token owner")

	// ErrLockTimeout is returned when the per-drop or per-listing lock can not be acquired in time
	ErrLockTimeout = errors.New("resource is busy, retry later")
)

var rejections = []error{
	ErrNotFound,
	ErrBadParamInput,
	ErrInvalidNumberFormat,
	ErrInvalidAddress,
	ErrInvalidSignature,
	ErrInvalidNonce,
	ErrUnauthorized,
	ErrInvalidWindow,
	ErrCampaignOverlap,
	ErrDropNotStarted,
	ErrDropEnded,
	ErrNotWhitelisted,
	ErrSupplyExceeded,
	ErrWalletLimitExceeded,
	ErrDropActiveOrPending,
	ErrUnsupportedTokenType,
	ErrInsufficientPayment,
	ErrExcessPayment,
	ErrInsufficientFunds,
	ErrListingInactive,
	ErrSellerNoLongerHolds,
	ErrAuthorizationRevoked,
	ErrNotApproved,
	ErrInsufficientHoldings,
	ErrNotTokenOwner,
	ErrLockTimeout,
}

// IsRejection reports whether err is a refused call rather than a failure of the service
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
