package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/delivery"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/drop"
	"github.com/x-xyz/launchpad/middleware"
	authMiddleware "github.com/x-xyz/launchpad/stores/auth/delivery/http/middleware"
)

type handler struct {
	drop drop.Usecase
}

func New(e *echo.Echo, du drop.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		drop: du,
	}

	validAddress := middleware.IsValidAddress("address")
	validAccount := middleware.IsValidAddress("account")

	g := e.Group("/collections/:address/drops")
	g.POST("", h.create, validAddress, authMiddleware.Auth())
	g.GET("", h.getAll, validAddress)
	g.GET("/current", h.getCurrent, validAddress)
	g.POST("/current/mint", h.mint, validAddress, authMiddleware.Auth())
	g.GET("/current/mints/:account", h.getMintCount, validAddress, validAccount)
	g.GET("/current/whitelist/:account", h.getWhiteListAccess, validAddress, validAccount)
}

// create
//
//	@Summary		Create a drop
//	@Description	Open a new minting campaign on a collection. Caller must own the collection.
//	@Tags			drops
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			address	path		string				true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param			params	body		drop.CreateParams	true	"drop config"
//	@Success		201		{object}	drop.Drop
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Failure		500
//	@Router			/collections/{address}/drops [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	address := domain.Address(c.Param("address"))

	p := &drop.CreateParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.drop.Create(ctx, caller, address, p)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// getAll
//
//	@Summary	List drops of a collection
//	@Tags		drops
//	@Produce	json
//	@Param		address	path		string	true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param		offset	query		int		false	"paging offset"			example(0)
//	@Param		limit	query		int		false	"paging size"			example(20)
//	@Success	200		{object}	drop.SearchResult
//	@Failure	400
//	@Failure	500
//	@Router		/collections/{address}/drops [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Offset int32 `query:"offset"`
		Limit  int32 `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 {
		p.Limit = 20
	}

	items, count, err := h.drop.FindAll(ctx, domain.Address(c.Param("address")), p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, &drop.SearchResult{Items: items, Count: count})
}

// getCurrent
//
//	@Summary	Get current drop
//	@Tags		drops
//	@Produce	json
//	@Param		address	path		string	true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Success	200		{object}	drop.Drop
//	@Failure	404
//	@Failure	500
//	@Router		/collections/{address}/drops/current [get]
func (h *handler) getCurrent(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.drop.Current(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// mint
//
//	@Summary		Mint from current drop
//	@Description	value must equal units times the price of the current phase
//	@Tags			drops
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			address	path		string			true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param			params	body		drop.MintParams	true	"units and attached value"
//	@Success		200		{object}	drop.MintResult
//	@Failure		400
//	@Failure		402
//	@Failure		409
//	@Failure		422
//	@Failure		500
//	@Router			/collections/{address}/drops/current/mint [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &drop.MintParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.drop.Mint(ctx, caller, domain.Address(c.Param("address")), p.Units, p.Value)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getMintCount
//
//	@Summary	Get units minted by an account in current drop
//	@Tags		drops
//	@Produce	json
//	@Param		address	path		string	true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param		account	path		string	true	"account address"		example(0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0)
//	@Success	200		{integer}	integer	"minted units"
//	@Failure	500
//	@Router		/collections/{address}/drops/current/mints/{account} [get]
func (h *handler) getMintCount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.drop.GetMintCount(ctx, domain.Address(c.Param("address")), domain.Address(c.Param("account")))
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getWhiteListAccess
//
//	@Summary	Check whitelist membership in current drop
//	@Tags		drops
//	@Produce	json
//	@Param		address	path		string	true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param		account	path		string	true	"account address"		example(0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0)
//	@Success	200		{boolean}	boolean
//	@Failure	500
//	@Router		/collections/{address}/drops/current/whitelist/{account} [get]
func (h *handler) getWhiteListAccess(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.drop.GetWhiteListAccess(ctx, domain.Address(c.Param("address")), domain.Address(c.Param("account")))
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
