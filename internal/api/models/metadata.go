package models

// Enums represents the enum values used by the API.
type Enums struct {
	Placements          []Placement    `json:"placements"`
	AlternateGapOffsets []int          `json:"alternateGapOffsets"`
	HealthStatuses      []HealthStatus `json:"healthStatuses"`
}
