// Package firestore provides the production Firestore-backed repository.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/rakshak-ai/rakshak/pkg/domain/interfaces"
)

const (
	collectionEmergencies    = "emergencies"
	collectionMedicalRecords = "medical_records"
	collectionUserLocations  = "user_locations"
)

type repositoryImpl struct {
	client        *firestore.Client
	emergency     *emergencyRepository
	medicalRecord *medicalRecordRepository
	userLocation  *userLocationRepository
}

// New creates a new Firestore repository. databaseID may be empty to use
// the default database.
func New(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project_id", projectID), goerr.V("database_id", databaseID))
	}

	return &repositoryImpl{
		client:        client,
		emergency:     newEmergencyRepository(client),
		medicalRecord: newMedicalRecordRepository(client),
		userLocation:  newUserLocationRepository(client),
	}, nil
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
	if err := r.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}
