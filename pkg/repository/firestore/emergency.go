package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/repository"
)

// emergencyDoc is the Firestore document representation of
// model.EmergencyRecord
type emergencyDoc struct {
	CallID           string    `firestore:"call_id"`
	Status           string    `firestore:"status"`
	DriverName       string    `firestore:"driver_name"`
	DriverStatus     string    `firestore:"driver_status"`
	DriverLatitude   float64   `firestore:"driver_latitude"`
	DriverLongitude  float64   `firestore:"driver_longitude"`
	PatientLocation  string    `firestore:"patient_location"`
	PatientLatitude  float64   `firestore:"patient_latitude"`
	PatientLongitude float64   `firestore:"patient_longitude"`
	CreatedAt        time.Time `firestore:"created_at"`
}

func toEmergencyDoc(rec *model.EmergencyRecord) *emergencyDoc {
	return &emergencyDoc{
		CallID:           rec.CallID,
		Status:           rec.Status,
		DriverName:       rec.Driver.Name,
		DriverStatus:     rec.Driver.Status,
		DriverLatitude:   rec.Driver.Latitude,
		DriverLongitude:  rec.Driver.Longitude,
		PatientLocation:  rec.Patient.Location,
		PatientLatitude:  rec.Patient.Latitude,
		PatientLongitude: rec.Patient.Longitude,
		CreatedAt:        rec.CreatedAt,
	}
}

func fromEmergencyDoc(d *emergencyDoc) *model.EmergencyRecord {
	return &model.EmergencyRecord{
		CallID: d.CallID,
		Status: d.Status,
		Driver: model.Driver{
			Name:      d.DriverName,
			Status:    d.DriverStatus,
			Latitude:  d.DriverLatitude,
			Longitude: d.DriverLongitude,
		},
		Patient: model.PatientLocation{
			Location:  d.PatientLocation,
			Latitude:  d.PatientLatitude,
			Longitude: d.PatientLongitude,
		},
		CreatedAt: d.CreatedAt,
	}
}

type emergencyRepository struct {
	client *firestore.Client
}

func newEmergencyRepository(client *firestore.Client) *emergencyRepository {
	return &emergencyRepository{client: client}
}

func (r *emergencyRepository) Create(ctx context.Context, rec *model.EmergencyRecord) (*model.EmergencyRecord, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	docRef := r.client.Collection(collectionEmergencies).Doc(rec.CallID)
	if _, err := docRef.Set(ctx, toEmergencyDoc(rec)); err != nil {
		return nil, goerr.Wrap(err, "failed to create emergency record", goerr.V("call_id", rec.CallID))
	}

	return rec, nil
}

func (r *emergencyRepository) GetByCallID(ctx context.Context, callID string) (*model.EmergencyRecord, error) {
	doc, err := r.client.Collection(collectionEmergencies).Doc(callID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "emergency record not found", goerr.V("call_id", callID))
		}
		return nil, goerr.Wrap(err, "failed to get emergency record", goerr.V("call_id", callID))
	}

	var d emergencyDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal emergency record", goerr.V("call_id", callID))
	}

	return fromEmergencyDoc(&d), nil
}
