package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// ErrSpecialistResponse indicates the specialist oracle output could
	// not be used. Unlike the emergency branch, this is surfaced instead
	// of defaulted: a referral built from fabricated fields is not safe
	// to present.
	ErrSpecialistResponse = errors.New("unusable specialist response")

	// ErrNoRecords indicates no record exists under a call ID in either
	// collection
	ErrNoRecords = errors.New("no records found for call ID")
)
