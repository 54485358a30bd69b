package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/delivery"
	"github.com/x-xyz/launchpad/base/validator"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/event"
	"github.com/x-xyz/launchpad/middleware"
)

type handler struct {
	event event.Usecase
}

func New(e *echo.Echo, eu event.Usecase, cacheTtl time.Duration) {
	h := &handler{
		event: eu,
	}

	e.GET("/events", h.getAll, middleware.CacheHttp(cacheTtl))
}

// getAll
//
//	@Summary		List events
//	@Description	Newest first. account matches both the caller and the counterparty of an event.
//	@Tags			events
//	@Produce		json
//	@Param			type		query		string	false	"event type"			enums(dropCreated, tokenMinted, listed, listingSold, listingCancelled, listingInvalidated, baseURIUpdated, supplyMinted, ownershipTransferred)
//	@Param			collection	query		string	false	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param			account		query		string	false	"account address"		example(0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0)
//	@Param			offset		query		int		false	"paging offset"			example(0)
//	@Param			limit		query		int		false	"paging size"			example(20)
//	@Success		200			{object}	event.SearchResult
//	@Failure		400
//	@Failure		500
//	@Router			/events [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Type       *event.Type     `query:"type"`
		Collection *domain.Address `query:"collection"`
		Account    *domain.Address `query:"account"`
		Offset     int32           `query:"offset"`
		Limit      int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 {
		p.Limit = 20
	}

	opts := []event.FindAllOptions{
		event.WithPagination(p.Offset, p.Limit),
	}
	if p.Type != nil {
		opts = append(opts, event.WithType(*p.Type))
	}
	if p.Collection != nil {
		if !validator.IsValidAddress(string(*p.Collection)) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		opts = append(opts, event.WithCollection(*p.Collection))
	}
	if p.Account != nil {
		if !validator.IsValidAddress(string(*p.Account)) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		opts = append(opts, event.WithAccount(*p.Account))
	}

	items, count, err := h.event.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, &event.SearchResult{Items: items, Count: count})
}
