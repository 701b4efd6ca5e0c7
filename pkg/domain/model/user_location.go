package model

import "time"

// UserLocation is the last known location of a user, upserted by user ID
type UserLocation struct {
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}
