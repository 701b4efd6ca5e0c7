package model

import "time"

// PatientInfo holds patient identity fields of a medical record
type PatientInfo struct {
	Name     string `json:"name"`
	Date     string `json:"date"`     // ISO date of the visit
	Duration string `json:"duration"` // not applicable for AI triage
}

// MedicalRecord is the structured specialist referral produced by the
// non-emergency branch
type MedicalRecord struct {
	CallID               string      `json:"call_id"`
	Patient              PatientInfo `json:"patient_information"`
	ChiefComplaint       string      `json:"chief_complaint"`
	ReportedSymptoms     []string    `json:"reported_symptoms"`
	AIAnalysis           string      `json:"ai_analysis"`
	RecommendedSpecialty string      `json:"recommended_specialty"`
	CreatedAt            time.Time   `json:"created_at,omitempty"`
}
