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

// medicalRecordDoc is the Firestore document representation of
// model.MedicalRecord
type medicalRecordDoc struct {
	CallID               string    `firestore:"call_id"`
	PatientName          string    `firestore:"patient_name"`
	VisitDate            string    `firestore:"visit_date"`
	Duration             string    `firestore:"duration"`
	ChiefComplaint       string    `firestore:"chief_complaint"`
	ReportedSymptoms     []string  `firestore:"reported_symptoms"`
	AIAnalysis           string    `firestore:"ai_analysis"`
	RecommendedSpecialty string    `firestore:"recommended_specialty"`
	CreatedAt            time.Time `firestore:"created_at"`
}

func toMedicalRecordDoc(rec *model.MedicalRecord) *medicalRecordDoc {
	return &medicalRecordDoc{
		CallID:               rec.CallID,
		PatientName:          rec.Patient.Name,
		VisitDate:            rec.Patient.Date,
		Duration:             rec.Patient.Duration,
		ChiefComplaint:       rec.ChiefComplaint,
		ReportedSymptoms:     rec.ReportedSymptoms,
		AIAnalysis:           rec.AIAnalysis,
		RecommendedSpecialty: rec.RecommendedSpecialty,
		CreatedAt:            rec.CreatedAt,
	}
}

func fromMedicalRecordDoc(d *medicalRecordDoc) *model.MedicalRecord {
	return &model.MedicalRecord{
		CallID: d.CallID,
		Patient: model.PatientInfo{
			Name:     d.PatientName,
			Date:     d.VisitDate,
			Duration: d.Duration,
		},
		ChiefComplaint:       d.ChiefComplaint,
		ReportedSymptoms:     d.ReportedSymptoms,
		AIAnalysis:           d.AIAnalysis,
		RecommendedSpecialty: d.RecommendedSpecialty,
		CreatedAt:            d.CreatedAt,
	}
}

type medicalRecordRepository struct {
	client *firestore.Client
}

func newMedicalRecordRepository(client *firestore.Client) *medicalRecordRepository {
	return &medicalRecordRepository{client: client}
}

func (r *medicalRecordRepository) Create(ctx context.Context, rec *model.MedicalRecord) (*model.MedicalRecord, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	docRef := r.client.Collection(collectionMedicalRecords).Doc(rec.CallID)
	if _, err := docRef.Set(ctx, toMedicalRecordDoc(rec)); err != nil {
		return nil, goerr.Wrap(err, "failed to create medical record", goerr.V("call_id", rec.CallID))
	}

	return rec, nil
}

func (r *medicalRecordRepository) GetByCallID(ctx context.Context, callID string) (*model.MedicalRecord, error) {
	doc, err := r.client.Collection(collectionMedicalRecords).Doc(callID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "medical record not found", goerr.V("call_id", callID))
		}
		return nil, goerr.Wrap(err, "failed to get medical record", goerr.V("call_id", callID))
	}

	var d medicalRecordDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal medical record", goerr.V("call_id", callID))
	}

	return fromMedicalRecordDoc(&d), nil
}
