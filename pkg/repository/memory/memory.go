// Package memory provides an in-memory repository for development and
// testing. All returned records are deep copies so callers cannot
// mutate stored state.
package memory

import (
	"github.com/rakshak-ai/rakshak/pkg/domain/interfaces"
)

type repositoryImpl struct {
	emergency     *emergencyRepository
	medicalRecord *medicalRecordRepository
	userLocation  *userLocationRepository
}

// New creates a new in-memory repository
func New() interfaces.Repository {
	return &repositoryImpl{
		emergency:     newEmergencyRepository(),
		medicalRecord: newMedicalRecordRepository(),
		userLocation:  newUserLocationRepository(),
	}
}

func (r *repositoryImpl) Emergency() interfaces.EmergencyRepository {
	return r.emergency
}

func (r *repositoryImpl) MedicalRecord() interfaces.MedicalRecordRepository {
	return r.medicalRecord
}

func (r *repositoryImpl) UserLocation() interfaces.UserLocationRepository {
	return r.userLocation
}

func (r *repositoryImpl) Close() error {
	return nil
}
