package dto

type OccupancyStatus struct {
	Level          string `json:"level"`
	Percentage     int    `json:"percentage"`
	AvailableSeats int    `json:"available_seats"`
	TotalSeats     int    `json:"total_seats"`
}

type WifiStatus struct {
	SpeedMbps  int    `json:"speed_mbps"`
	Quality    string `json:"quality"`
	LastTested string `json:"last_tested"`
}

type NoiseStatus struct {
	Level    string `json:"level"`
	Decibels int    `json:"decibels"`
}

type WaitTimeStatus struct {
	EstimatedMinutes int  `json:"estimated_minutes"`
	HasQueue         bool `json:"has_queue"`
}

type PowerOutletStatus struct {
	Available int `json:"available"`
	Total     int `json:"total"`
}

// StatusResponse is the mocked live snapshot for one cafe. Every read
// produces a fresh snapshot; nothing is stored.
type StatusResponse struct {
	CafeID       string            `json:"cafe_id"`
	Occupancy    OccupancyStatus   `json:"occupancy"`
	Wifi         WifiStatus        `json:"wifi"`
	Noise        NoiseStatus       `json:"noise"`
	WaitTime     WaitTimeStatus    `json:"wait_time"`
	PowerOutlets PowerOutletStatus `json:"power_outlets"`
	LastUpdated  string            `json:"last_updated"`
}
