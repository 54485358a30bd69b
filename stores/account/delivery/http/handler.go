package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/delivery"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/account"
	"github.com/x-xyz/launchpad/middleware"
)

type handler struct {
	au account.Usecase
}

func New(e *echo.Echo, au account.Usecase) {
	h := &handler{
		au: au,
	}
	g := e.Group("/accounts")
	g.GET("/:address/nonce", h.generateNonce, middleware.IsValidAddress("address"))
}

// generateNonce
//
//	@Summary		Get sign-in nonce
//	@Description	Issues a fresh nonce for the account, creating the account on first use. The previous nonce is replaced.
//	@Tags			auth
//	@Produce		json
//	@Param			address	path		string	true	"account address"	example(0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0)
//	@Success		200		{object}	object{data=int}
//	@Failure		400
//	@Failure		500
//	@Router			/accounts/{address}/nonce [get]
func (h *handler) generateNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	nonce, err := h.au.GenerateNonce(ctx, domain.Address(c.Param("address")).ToLower())
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nonce)
}
