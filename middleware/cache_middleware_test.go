package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
)

type cacheMiddlewareSuite struct {
	suite.Suite
}

func (s *cacheMiddlewareSuite) SetupSuite() {
	SetupCache(nil, 1)
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) serve(target string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	s.Require().NoError(CacheHttp(30 * time.Second)(h)(c))
	return rec
}

func (s *cacheMiddlewareSuite) TestCacheHit() {
	rec := s.serve("/events?type=listed&collection=0x1", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, World")
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())

	// same query in another order hits the same entry
	rec = s.serve("/events?collection=0x1&type=listed", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, again")
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())
}

func (s *cacheMiddlewareSuite) TestErrorNotCached() {
	rec := s.serve("/events?type=unknown", func(c echo.Context) error {
		return c.String(http.StatusBadRequest, "bad")
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.serve("/events?type=unknown", func(c echo.Context) error {
		return c.String(http.StatusOK, "fresh")
	})
	s.Equal("fresh", rec.Body.String())
}
