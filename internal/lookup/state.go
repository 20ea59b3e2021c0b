package lookup

import (
	"slices"

	"pixel-weather/internal/store"
)

// State is everything a front end renders. Result is nil whenever Error is
// set, so stale weather is never shown next to a failure.
type State struct {
	Loading     bool              `json:"loading"`
	Error       string            `json:"error,omitempty"`
	City        string            `json:"city"`
	Result      *Result           `json:"result,omitempty"`
	Preferences store.Preferences `json:"preferences"`
	SavedCities []string          `json:"savedCities"`
}

func initialState(defaultCity string) State {
	return State{
		City:        defaultCity,
		Preferences: store.DefaultPreferences(),
		SavedCities: []string{},
	}
}

func beginLookup(s State) State {
	s.Loading = true
	s.Error = ""
	return s
}

func lookupSucceeded(s State, r *Result) State {
	s.Loading = false
	s.Error = ""
	s.Result = r
	if r != nil && r.Location.DisplayName != "" {
		s.City = r.Location.DisplayName
	}
	return s
}

func lookupFailed(s State, message string) State {
	s.Loading = false
	s.Error = message
	s.Result = nil
	return s
}

func (s State) clone() State {
	s.SavedCities = slices.Clone(s.SavedCities)
	return s
}
