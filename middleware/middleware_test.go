package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
)

type middlewareSuite struct {
	suite.Suite
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) TestIsValidAddress() {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	e.GET("/collections/:address", ok, IsValidAddress("address"))

	tests := []struct {
		address string
		code    int
	}{
		{"0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d", http.StatusOK},
		{"0x939ae6A4C8dfDBB1f7085189574F0A938013952A", http.StatusOK},
		{"0x939ae6a4c8dfdbb1f7085189574f0a938013952", http.StatusBadRequest},
		{"collection", http.StatusBadRequest},
	}
	for _, t := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/collections/"+t.address, nil))
		s.Equal(t.code, rec.Code, t.address)
	}
}

func (s *middlewareSuite) TestAddContext() {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := InitMiddleware().AddContext()(func(c echo.Context) error {
		_, ok := c.Get("ctx").(ctx.Ctx)
		s.True(ok)
		return nil
	})(c)
	s.NoError(err)
}

func (s *middlewareSuite) TestResponseLogger() {
	e := echo.New()
	m := InitMiddleware()
	e.Use(m.ResponseLogger())
	e.Use(m.AddContext())
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "listing inactive")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())

	// the handler error is rendered once by the logger, not again by echo
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "listing inactive")
}
