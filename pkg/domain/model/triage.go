package model

import "github.com/rakshak-ai/rakshak/pkg/domain/types"

// TriageQuery is the input to a single pipeline run
type TriageQuery struct {
	Text string
	// UserLocation is the prior known location of the patient, used as a
	// fallback when no location can be extracted from the query.
	UserLocation string
}

// TriageResult is the outcome of a single pipeline run. Exactly one of
// Emergency and Specialist is set, or neither when no branch was taken.
type TriageResult struct {
	// RunID identifies the pipeline run in logs
	RunID    string
	Query    string
	Decision types.Decision
	Phase    types.Phase

	Emergency  *DispatchResult
	Specialist *MedicalRecord

	// ErrorDetail carries a non-fatal error absorbed during the run,
	// e.g. a classification oracle failure that was defaulted to
	// non_emergency, or a specialist branch failure.
	ErrorDetail string
}

// DispatchResult is the outcome of the emergency branch
type DispatchResult struct {
	CallID          string
	CallSID         string
	PatientName     string
	PatientLocation string
	Simulated       bool

	// Ambulance position reported to the caller, currently the dispatch
	// defaults until a live dispatch feed exists.
	AmbulanceLatitude  float64
	AmbulanceLongitude float64
}
