package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/delivery"
	"github.com/x-xyz/launchpad/base/validator"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/listing"
	authMiddleware "github.com/x-xyz/launchpad/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.Usecase
}

func New(e *echo.Echo, lu listing.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		listing: lu,
	}

	g := e.Group("/listings")
	g.POST("", h.create, authMiddleware.Auth())
	g.GET("", h.getAll)
	g.GET("/:id", h.get)
	g.POST("/:id/buy", h.buy, authMiddleware.Auth())
	g.DELETE("/:id", h.cancel, authMiddleware.Auth())
}

func parseId(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, domain.ErrBadParamInput
	}
	return id, nil
}

// create
//
//	@Summary		List a token
//	@Description	Caller must hold the amount and have approved the marketplace operator
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		listing.CreateParams	true	"listing"
//	@Success		201		{object}	listing.Listing
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/listings [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &listing.CreateParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.List(ctx, caller, p)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// getAll
//
//	@Summary	Search listings
//	@Tags		listings
//	@Produce	json
//	@Param		seller			query		string	false	"seller address"	example(0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0)
//	@Param		contractAddress	query		string	false	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param		active			query		bool	false	"active only"
//	@Param		offset			query		int		false	"paging offset"	example(0)
//	@Param		limit			query		int		false	"paging size"	example(20)
//	@Success	200				{object}	listing.SearchResult
//	@Failure	400
//	@Failure	500
//	@Router		/listings [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Seller          *domain.Address `query:"seller"`
		ContractAddress *domain.Address `query:"contractAddress"`
		Active          *bool           `query:"active"`
		Offset          int32           `query:"offset"`
		Limit           int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 {
		p.Limit = 20
	}

	opts := []listing.FindAllOptions{
		listing.WithPagination(p.Offset, p.Limit),
	}
	if p.Seller != nil {
		if !validator.IsValidAddress(string(*p.Seller)) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		opts = append(opts, listing.WithSeller(*p.Seller))
	}
	if p.ContractAddress != nil {
		if !validator.IsValidAddress(string(*p.ContractAddress)) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		opts = append(opts, listing.WithContractAddress(*p.ContractAddress))
	}
	if p.Active != nil {
		opts = append(opts, listing.WithActive(*p.Active))
	}

	items, count, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, &listing.SearchResult{Items: items, Count: count})
}

// get
//
//	@Summary	Get listing
//	@Tags		listings
//	@Produce	json
//	@Param		id	path		int	true	"listing id"	example(0)
//	@Success	200	{object}	listing.Listing
//	@Failure	400
//	@Failure	404
//	@Failure	500
//	@Router		/listings/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.FindOne(ctx, id)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// buy
//
//	@Summary		Buy a listing
//	@Description	Value must equal the listing price, it is paid from the caller's ledger balance
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			id		path		int					true	"listing id"	example(0)
//	@Param			params	body		listing.BuyParams	true	"attached value"
//	@Success		200		{object}	listing.Listing
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Failure		500
//	@Router			/listings/{id}/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := &listing.BuyParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.Buy(ctx, caller, id, p.Value)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// cancel
//
//	@Summary	Cancel a listing
//	@Tags		listings
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		id	path		int	true	"listing id"	example(0)
//	@Success	200	{object}	listing.Listing
//	@Failure	400
//	@Failure	403
//	@Failure	404
//	@Failure	409
//	@Failure	500
//	@Router		/listings/{id} [delete]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.Cancel(ctx, caller, id)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
