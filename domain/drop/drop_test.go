package drop

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/domain"
)

type dropSuite struct {
	suite.Suite
	start time.Time
	d     *Drop
}

func (s *dropSuite) SetupTest() {
	s.start = time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)
	s.d = &Drop{
		StartTime:         s.start,
		EndTime:           s.start.Add(2 * time.Hour),
		HasWhiteListPhase: true,
		WhiteListEndTime:  s.start.Add(time.Hour),
		Price:             "100",
		WhiteListPrice:    "10",
	}
}

func TestDropSuite(t *testing.T) {
	suite.Run(t, new(dropSuite))
}

func (s *dropSuite) TestPhaseBoundaries() {
	cases := []struct {
		at    time.Duration
		phase Phase
	}{
		{-time.Second, PhasePending},
		{0, PhaseWhiteList},
		{time.Hour - time.Second, PhaseWhiteList},
		{time.Hour, PhasePublic},
		{2*time.Hour - time.Second, PhasePublic},
		{2 * time.Hour, PhaseEnded},
	}
	for _, c := range cases {
		s.Equal(c.phase, s.d.Phase(s.start.Add(c.at)), "at %s", c.at)
	}
}

func (s *dropSuite) TestPhaseWithoutWhiteList() {
	s.d.HasWhiteListPhase = false
	s.Equal(PhasePublic, s.d.Phase(s.start))
	s.False(s.d.IsOver(s.start.Add(time.Hour)))
	s.True(s.d.IsOver(s.start.Add(2 * time.Hour)))
}

func (s *dropSuite) TestUnitPrice() {
	s.Equal(domain.Wei("10"), s.d.UnitPrice(PhaseWhiteList))
	s.Equal(domain.Wei("100"), s.d.UnitPrice(PhasePublic))
}

func (s *dropSuite) TestPhaseJSON() {
	b, err := json.Marshal(PhaseWhiteList)
	s.Require().NoError(err)
	s.Equal(`"whiteList"`, string(b))
}

func (s *dropSuite) TestValidateWindow() {
	p := &CreateParams{StartTime: s.start, EndTime: s.start}
	s.Equal(domain.ErrInvalidWindow, p.ValidateWindow())

	p.EndTime = s.start.Add(time.Hour)
	s.NoError(p.ValidateWindow())

	p.HasWhiteListPhase = true
	p.WhiteListEndTime = s.start.Add(-time.Second)
	s.Equal(domain.ErrInvalidWindow, p.ValidateWindow())

	p.WhiteListEndTime = s.start.Add(2 * time.Hour)
	s.Equal(domain.ErrInvalidWindow, p.ValidateWindow())

	// both ends are inclusive for the whitelist end
	p.WhiteListEndTime = s.start
	s.NoError(p.ValidateWindow())
	p.WhiteListEndTime = p.EndTime
	s.NoError(p.ValidateWindow())
}

func (s *dropSuite) TestValidate() {
	p := &CreateParams{Supply: 9, MintLimitPerWallet: 5, Price: "100"}
	s.NoError(p.Validate())

	p.Supply = 0
	s.Equal(domain.ErrBadParamInput, p.Validate())

	p.Supply = 9
	p.Price = "-1"
	s.Equal(domain.ErrBadParamInput, p.Validate())

	p.Price = "1"
	p.HasWhiteListPhase = true
	p.WhiteListPrice = "0.5"
	s.Equal(domain.ErrBadParamInput, p.Validate())
}
