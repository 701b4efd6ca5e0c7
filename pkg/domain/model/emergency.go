package model

import "time"

// Driver describes the responder assigned to an emergency dispatch
type Driver struct {
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PatientLocation describes where the patient was reported
type PatientLocation struct {
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EmergencyRecord is the dispatch record created once per emergency
// classification
type EmergencyRecord struct {
	CallID    string          `json:"call_id"`
	Status    string          `json:"status"`
	Driver    Driver          `json:"driver"`
	Patient   PatientLocation `json:"patient"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
}
