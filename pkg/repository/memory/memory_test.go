package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/repository"
	"github.com/rakshak-ai/rakshak/pkg/repository/memory"
)

func TestEmergencyRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get by call id", func(t *testing.T) {
		repo := memory.New()

		rec := &model.EmergencyRecord{
			CallID: "CALL_1",
			Status: "dispatched",
			Driver: model.Driver{Name: "Ambulance Driver", Status: "en route", Latitude: 28.5494, Longitude: 77.25},
			Patient: model.PatientLocation{
				Location: "Sector 62", Latitude: 28.5494, Longitude: 77.2588,
			},
		}

		created, err := repo.Emergency().Create(ctx, rec)
		gt.NoError(t, err).Required()
		gt.Bool(t, created.CreatedAt.IsZero()).False()

		got, err := repo.Emergency().GetByCallID(ctx, "CALL_1")
		gt.NoError(t, err).Required()
		gt.Value(t, got.Status).Equal("dispatched")
		gt.Value(t, got.Driver.Name).Equal("Ambulance Driver")
		gt.Value(t, got.Patient.Location).Equal("Sector 62")
	})

	t.Run("get unknown call id fails with not found", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.Emergency().GetByCallID(ctx, "CALL_NONE")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})

	t.Run("returned records are copies", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.Emergency().Create(ctx, &model.EmergencyRecord{CallID: "CALL_2", Status: "dispatched"})
		gt.NoError(t, err).Required()

		got, err := repo.Emergency().GetByCallID(ctx, "CALL_2")
		gt.NoError(t, err).Required()
		got.Status = "mutated"

		again, err := repo.Emergency().GetByCallID(ctx, "CALL_2")
		gt.NoError(t, err).Required()
		gt.Value(t, again.Status).Equal("dispatched")
	})

	t.Run("provided created at is preserved", func(t *testing.T) {
		repo := memory.New()

		at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		created, err := repo.Emergency().Create(ctx, &model.EmergencyRecord{CallID: "CALL_3", CreatedAt: at})
		gt.NoError(t, err).Required()
		gt.Value(t, created.CreatedAt).Equal(at)
	})
}

func TestMedicalRecordRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get by call id", func(t *testing.T) {
		repo := memory.New()

		rec := &model.MedicalRecord{
			CallID:               "CALL_M",
			Patient:              model.PatientInfo{Name: "Asha", Date: "2025-06-01", Duration: "N/A"},
			ChiefComplaint:       "Persistent headache",
			ReportedSymptoms:     []string{"headache", "nausea"},
			AIAnalysis:           "Likely tension headache",
			RecommendedSpecialty: "Neurology",
		}

		_, err := repo.MedicalRecord().Create(ctx, rec)
		gt.NoError(t, err).Required()

		got, err := repo.MedicalRecord().GetByCallID(ctx, "CALL_M")
		gt.NoError(t, err).Required()
		gt.Value(t, got.Patient.Name).Equal("Asha")
		gt.Array(t, got.ReportedSymptoms).Length(2)
	})

	t.Run("symptom slices are copied", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.MedicalRecord().Create(ctx, &model.MedicalRecord{
			CallID:           "CALL_S",
			ReportedSymptoms: []string{"cough"},
		})
		gt.NoError(t, err).Required()

		got, err := repo.MedicalRecord().GetByCallID(ctx, "CALL_S")
		gt.NoError(t, err).Required()
		got.ReportedSymptoms[0] = "mutated"

		again, err := repo.MedicalRecord().GetByCallID(ctx, "CALL_S")
		gt.NoError(t, err).Required()
		gt.Value(t, again.ReportedSymptoms[0]).Equal("cough")
	})

	t.Run("get unknown call id fails with not found", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.MedicalRecord().GetByCallID(ctx, "CALL_NONE")
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})
}

func TestUserLocationRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert and get", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.UserLocation().Upsert(ctx, &model.UserLocation{
			UserID: "user-1", Latitude: 28.6139, Longitude: 77.209, Address: "Delhi",
		})
		gt.NoError(t, err).Required()

		got, err := repo.UserLocation().Get(ctx, "user-1")
		gt.NoError(t, err).Required()
		gt.Value(t, got.Address).Equal("Delhi")
	})

	t.Run("upsert replaces the previous location", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.UserLocation().Upsert(ctx, &model.UserLocation{UserID: "user-1", Address: "old"})
		gt.NoError(t, err).Required()
		_, err = repo.UserLocation().Upsert(ctx, &model.UserLocation{UserID: "user-1", Address: "new"})
		gt.NoError(t, err).Required()

		got, err := repo.UserLocation().Get(ctx, "user-1")
		gt.NoError(t, err).Required()
		gt.Value(t, got.Address).Equal("new")
	})

	t.Run("get unknown user fails with not found", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.UserLocation().Get(ctx, "nobody")
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})
}
