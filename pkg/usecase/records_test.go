package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/repository"
	"github.com/rakshak-ai/rakshak/pkg/repository/memory"
	"github.com/rakshak-ai/rakshak/pkg/usecase"
)

func TestRecordUseCase_UserLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("save stamps the current time when none is provided", func(t *testing.T) {
		uc := usecase.New(memory.New())

		saved, err := uc.Record.SaveUserLocation(ctx, &model.UserLocation{
			UserID:    "user-1",
			Latitude:  28.6139,
			Longitude: 77.2090,
		})
		gt.NoError(t, err).Required()
		gt.Bool(t, saved.Timestamp.IsZero()).False()
	})

	t.Run("save requires a user id", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Record.SaveUserLocation(ctx, &model.UserLocation{Latitude: 1, Longitude: 2})
		gt.Value(t, err).NotNil()
	})

	t.Run("save upserts by user id", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Record.SaveUserLocation(ctx, &model.UserLocation{UserID: "user-1", Address: "old"})
		gt.NoError(t, err).Required()
		_, err = uc.Record.SaveUserLocation(ctx, &model.UserLocation{UserID: "user-1", Address: "new"})
		gt.NoError(t, err).Required()

		loc, err := uc.Record.GetUserLocation(ctx, "user-1")
		gt.NoError(t, err).Required()
		gt.Value(t, loc.Address).Equal("new")
	})

	t.Run("get unknown user fails with not found", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Record.GetUserLocation(ctx, "nobody")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})
}

func TestRecordUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("emergency record requires a call id", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Record.CreateEmergency(ctx, &model.EmergencyRecord{Status: "dispatched"})
		gt.Value(t, err).NotNil()
	})

	t.Run("medical record requires a call id", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Record.CreateMedicalRecord(ctx, &model.MedicalRecord{ChiefComplaint: "headache"})
		gt.Value(t, err).NotNil()
	})

	t.Run("created records carry a timestamp", func(t *testing.T) {
		uc := usecase.New(memory.New())

		created, err := uc.Record.CreateEmergency(ctx, &model.EmergencyRecord{CallID: "CALL_1", Status: "dispatched"})
		gt.NoError(t, err).Required()
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})
}

func TestRecordUseCase_GetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("no records fails with ErrNoRecords", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Record.GetStatus(ctx, "CALL_NONE")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, usecase.ErrNoRecords)).True()
	})

	t.Run("emergency only", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Record.CreateEmergency(ctx, &model.EmergencyRecord{CallID: "CALL_E", Status: "dispatched"})
		gt.NoError(t, err).Required()

		report, err := uc.Record.GetStatus(ctx, "CALL_E")
		gt.NoError(t, err).Required()
		gt.Value(t, report.CallID).Equal("CALL_E")
		gt.Value(t, report.Emergency).NotNil()
		gt.Value(t, report.MedicalRecord).Nil()
	})

	t.Run("medical record only", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Record.CreateMedicalRecord(ctx, &model.MedicalRecord{CallID: "CALL_M"})
		gt.NoError(t, err).Required()

		report, err := uc.Record.GetStatus(ctx, "CALL_M")
		gt.NoError(t, err).Required()
		gt.Value(t, report.Emergency).Nil()
		gt.Value(t, report.MedicalRecord).NotNil()
	})

	t.Run("both collections hold the call id", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Record.CreateEmergency(ctx, &model.EmergencyRecord{CallID: "CALL_B", Status: "dispatched"})
		gt.NoError(t, err).Required()
		_, err = uc.Record.CreateMedicalRecord(ctx, &model.MedicalRecord{CallID: "CALL_B"})
		gt.NoError(t, err).Required()

		report, err := uc.Record.GetStatus(ctx, "CALL_B")
		gt.NoError(t, err).Required()
		gt.Value(t, report.Emergency).NotNil()
		gt.Value(t, report.MedicalRecord).NotNil()
	})
}
