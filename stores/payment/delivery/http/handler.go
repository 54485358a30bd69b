package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/delivery"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/payment"
	"github.com/x-xyz/launchpad/middleware"
	authMiddleware "github.com/x-xyz/launchpad/stores/auth/delivery/http/middleware"
)

type handler struct {
	payment payment.Usecase
}

func New(e *echo.Echo, pu payment.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		payment: pu,
	}

	validAddress := middleware.IsValidAddress("address")

	g := e.Group("/accounts")
	g.GET("/:address/balance", h.getBalance, validAddress)
	g.POST("/:address/deposit", h.deposit, validAddress, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

// getBalance
//
//	@Summary	Get ledger balance
//	@Tags		payments
//	@Produce	json
//	@Param		address	path		string	true	"account address"	example(0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0)
//	@Success	200		{string}	string	"amount in wei"
//	@Failure	400
//	@Failure	500
//	@Router		/accounts/{address}/balance [get]
func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.payment.BalanceOf(ctx, domain.Address(c.Param("address")).ToLower())
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// deposit
//
//	@Summary		Credit an account
//	@Description	Admin only, funds the ledger from outside the service
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			address	path		string					true	"account address"	example(0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0)
//	@Param			params	body		payment.DepositParams	true	"amount"
//	@Success		200		{string}	string					"new balance in wei"
//	@Failure		400
//	@Failure		403
//	@Failure		500
//	@Router			/accounts/{address}/deposit [post]
func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &payment.DepositParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.payment.Deposit(ctx, domain.Address(c.Param("address")).ToLower(), p.Amount)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
