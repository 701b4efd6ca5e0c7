package interfaces

import (
	"context"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
)

// Repository defines the interface for record persistence
type Repository interface {
	Emergency() EmergencyRepository
	MedicalRecord() MedicalRecordRepository
	UserLocation() UserLocationRepository

	Close() error
}

// EmergencyRepository persists emergency dispatch records keyed by call ID
type EmergencyRepository interface {
	Create(ctx context.Context, rec *model.EmergencyRecord) (*model.EmergencyRecord, error)
	GetByCallID(ctx context.Context, callID string) (*model.EmergencyRecord, error)
}

// MedicalRecordRepository persists specialist referral records keyed by call ID
type MedicalRecordRepository interface {
	Create(ctx context.Context, rec *model.MedicalRecord) (*model.MedicalRecord, error)
	GetByCallID(ctx context.Context, callID string) (*model.MedicalRecord, error)
}

// UserLocationRepository persists user locations, upserted by user ID
type UserLocationRepository interface {
	Upsert(ctx context.Context, loc *model.UserLocation) (*model.UserLocation, error)
	Get(ctx context.Context, userID string) (*model.UserLocation, error)
}
