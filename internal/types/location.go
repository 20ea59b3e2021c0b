package types

// Location is a resolved place. Country and Timezone are empty when the
// upstream did not report them.
type Location struct {
	Coordinates Coords `json:"coordinates"`
	DisplayName string `json:"displayName"`
	Country     string `json:"country,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}
