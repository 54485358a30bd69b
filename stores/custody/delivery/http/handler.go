package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/delivery"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/collection"
	"github.com/x-xyz/launchpad/domain/custody"
	"github.com/x-xyz/launchpad/middleware"
	authMiddleware "github.com/x-xyz/launchpad/stores/auth/delivery/http/middleware"
)

type handler struct {
	custody    custody.Usecase
	collection collection.Usecase
}

type tokenInfo struct {
	Collection  domain.Address  `json:"collection"`
	TokenId     domain.TokenId  `json:"tokenId"`
	TokenType   string          `json:"tokenType"`
	Owner       *domain.Address `json:"owner,omitempty"`
	TotalSupply int64           `json:"totalSupply"`
	URI         string          `json:"uri"`
}

type balance struct {
	Owner   domain.Address `json:"owner"`
	TokenId domain.TokenId `json:"tokenId"`
	Balance int64          `json:"balance"`
}

func New(e *echo.Echo, cu custody.Usecase, colu collection.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		custody:    cu,
		collection: colu,
	}

	validAddress := middleware.IsValidAddress("address")

	g := e.Group("/collections/:address")
	g.POST("/tokens", h.mintSupply, validAddress, authMiddleware.Auth())
	g.GET("/tokens/:tokenId", h.getToken, validAddress)
	g.GET("/tokens/:tokenId/balances/:owner", h.getBalance, validAddress, middleware.IsValidAddress("owner"))
	g.PUT("/approvals/:operator", h.setApproval, validAddress, middleware.IsValidAddress("operator"), authMiddleware.Auth())
	g.GET("/approvals/:owner/:operator", h.getApproval, validAddress, middleware.IsValidAddress("owner"), middleware.IsValidAddress("operator"))
}

func parseTokenId(s string) (domain.TokenId, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, domain.ErrBadParamInput
	}
	return domain.TokenId(id), nil
}

// mintSupply
//
//	@Summary		Mint a multi-owner token id
//	@Description	Owner only. The whole amount is credited to the caller.
//	@Tags			tokens
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			address	path		string						true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param			params	body		custody.MintSupplyParams	true	"supply"
//	@Success		201		{object}	custody.Supply
//	@Failure		400
//	@Failure		403
//	@Failure		500
//	@Router			/collections/{address}/tokens [post]
func (h *handler) mintSupply(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &custody.MintSupplyParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.custody.MintSupply(ctx, caller, domain.Address(c.Param("address")), p)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// getToken
//
//	@Summary	Get token
//	@Tags		tokens
//	@Produce	json
//	@Param		address	path		string	true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param		tokenId	path		int		true	"token id"				example(0)
//	@Success	200		{object}	http.tokenInfo
//	@Failure	400
//	@Failure	404
//	@Failure	500
//	@Router		/collections/{address}/tokens/{tokenId} [get]
func (h *handler) getToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address")).ToLower()

	tokenId, err := parseTokenId(c.Param("tokenId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	col, err := h.collection.FindOne(ctx, address)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	res := &tokenInfo{
		Collection: address,
		TokenId:    tokenId,
		TokenType:  col.TokenType.String(),
	}
	if col.TokenType == domain.TokenTypeSingleOwner {
		owner, err := h.custody.OwnerOf(ctx, address, tokenId)
		if err != nil {
			return delivery.MakeErrResp(c, err)
		}
		res.Owner = &owner
	}
	if res.TotalSupply, err = h.custody.TotalSupply(ctx, address, tokenId); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	if res.URI, err = h.collection.TokenURI(ctx, address, tokenId); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getBalance
//
//	@Summary	Get balance of an owner
//	@Tags		tokens
//	@Produce	json
//	@Param		address	path		string	true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param		tokenId	path		int		true	"token id"				example(0)
//	@Param		owner	path		string	true	"owner address"			example(0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0)
//	@Success	200		{object}	http.balance
//	@Failure	400
//	@Failure	404
//	@Failure	500
//	@Router		/collections/{address}/tokens/{tokenId}/balances/{owner} [get]
func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address")).ToLower()
	owner := domain.Address(c.Param("owner")).ToLower()

	tokenId, err := parseTokenId(c.Param("tokenId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	col, err := h.collection.FindOne(ctx, address)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	n, err := h.custody.BalanceOf(ctx, address, owner, tokenId, col.TokenType)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, &balance{Owner: owner, TokenId: tokenId, Balance: n})
}

// setApproval
//
//	@Summary		Approve an operator
//	@Description	Grants or revokes the operator right over every token the caller holds in the collection
//	@Tags			tokens
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			address		path	string					true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param			operator	path	string					true	"operator address"		example(0xce4468e7ce84aceb74363f4ea64e5a038176f369)
//	@Param			params		body	http.setApproval.params	true	"approval"
//	@Success		200
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/collections/{address}/approvals/{operator} [put]
func (h *handler) setApproval(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Approved bool `json:"approved"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	address := domain.Address(c.Param("address")).ToLower()
	operator := domain.Address(c.Param("operator")).ToLower()
	if err := h.custody.SetApprovalForAll(ctx, caller, address, operator, p.Approved); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "")
}

// getApproval
//
//	@Summary	Get operator approval
//	@Tags		tokens
//	@Produce	json
//	@Param		address		path		string	true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param		owner		path		string	true	"owner address"			example(0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0)
//	@Param		operator	path		string	true	"operator address"		example(0xce4468e7ce84aceb74363f4ea64e5a038176f369)
//	@Success	200			{boolean}	bool
//	@Failure	400
//	@Failure	500
//	@Router		/collections/{address}/approvals/{owner}/{operator} [get]
func (h *handler) getApproval(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	ok, err := h.custody.IsApprovedForAll(
		ctx,
		domain.Address(c.Param("address")).ToLower(),
		domain.Address(c.Param("owner")).ToLower(),
		domain.Address(c.Param("operator")).ToLower(),
	)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, ok)
}
