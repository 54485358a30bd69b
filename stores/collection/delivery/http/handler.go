package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/delivery"
	"github.com/x-xyz/launchpad/base/validator"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/collection"
	"github.com/x-xyz/launchpad/middleware"
	authMiddleware "github.com/x-xyz/launchpad/stores/auth/delivery/http/middleware"
)

type handler struct {
	collection collection.Usecase
}

func New(e *echo.Echo, cu collection.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		collection: cu,
	}

	validAddress := middleware.IsValidAddress("address")

	g := e.Group("/collections")
	g.POST("", h.create, authMiddleware.Auth())
	g.GET("", h.getAll)
	g.GET("/:address", h.get, validAddress)
	g.PUT("/:address/owner", h.transferOwnership, validAddress, authMiddleware.Auth())
	g.PUT("/:address/baseURI", h.setBaseURI, validAddress, authMiddleware.Auth())
}

// create
//
//	@Summary		Deploy a collection
//	@Description	Caller becomes the owner. The address is derived from the caller and a global deployment nonce.
//	@Tags			collections
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		collection.CreateParams	true	"collection"
//	@Success		201		{object}	collection.Collection
//	@Failure		400
//	@Failure		500
//	@Router			/collections [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &collection.CreateParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.collection.Create(ctx, caller, p)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// getAll
//
//	@Summary	List collections
//	@Tags		collections
//	@Produce	json
//	@Param		owner	query		string	false	"owner address"	example(0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0)
//	@Param		offset	query		int		false	"paging offset"	example(0)
//	@Param		limit	query		int		false	"paging size"	example(20)
//	@Success	200		{array}		collection.Collection
//	@Failure	400
//	@Failure	500
//	@Router		/collections [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner  *domain.Address `query:"owner"`
		Offset int32           `query:"offset"`
		Limit  int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 {
		p.Limit = 20
	}

	opts := []collection.FindAllOptions{
		collection.WithPagination(p.Offset, p.Limit),
	}
	if p.Owner != nil {
		if !validator.IsValidAddress(string(*p.Owner)) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		opts = append(opts, collection.WithOwner(*p.Owner))
	}

	res, err := h.collection.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// get
//
//	@Summary	Get collection
//	@Tags		collections
//	@Produce	json
//	@Param		address	path		string	true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Success	200		{object}	collection.Collection
//	@Failure	404
//	@Failure	500
//	@Router		/collections/{address} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.collection.FindOne(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// transferOwnership
//
//	@Summary	Transfer collection ownership
//	@Tags		collections
//	@Accept		json
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		address	path	string							true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param		params	body	http.transferOwnership.params	true	"new owner"
//	@Success	200
//	@Failure	400
//	@Failure	403
//	@Failure	500
//	@Router		/collections/{address}/owner [put]
func (h *handler) transferOwnership(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Owner domain.Address `json:"owner" validate:"address"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.collection.TransferOwnership(ctx, caller, domain.Address(c.Param("address")), p.Owner); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "")
}

// setBaseURI
//
//	@Summary		Set base uri
//	@Description	Rejected while the current drop is pending or live
//	@Tags			collections
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			address	path	string					true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param			params	body	http.setBaseURI.params	true	"base uri"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Failure		500
//	@Router			/collections/{address}/baseURI [put]
func (h *handler) setBaseURI(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		BaseURI string `json:"baseUri"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.collection.SetBaseURI(ctx, caller, domain.Address(c.Param("address")), p.BaseURI); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "")
}
