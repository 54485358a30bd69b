package drop

import (
	"encoding/json"
	"time"
)

type Phase int

const (
	PhasePending Phase = iota
	PhaseWhiteList
	PhasePublic
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseWhiteList:
		return "whiteList"
	case PhasePublic:
		return "public"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Phase resolves the phase of d at now. Every window is half-open: [start, end).
func (d *Drop) Phase(now time.Time) Phase {
	switch {
	case now.Before(d.StartTime):
		return PhasePending
	case !now.Before(d.EndTime):
		return PhaseEnded
	case d.HasWhiteListPhase && now.Before(d.WhiteListEndTime):
		return PhaseWhiteList
	}
	return PhasePublic
}

// IsOver reports whether the drop no longer blocks a new drop or metadata updates
func (d *Drop) IsOver(now time.Time) bool {
	return d.Phase(now) == PhaseEnded
}
