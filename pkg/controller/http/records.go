package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/repository"
	"github.com/rakshak-ai/rakshak/pkg/usecase"
	"github.com/rakshak-ai/rakshak/pkg/utils/errutil"
)

// saveUserLocationHandler upserts the caller's last known location
func saveUserLocationHandler(uc *usecase.RecordUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var loc model.UserLocation
		if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}
		if loc.UserID == "" {
			errutil.HandleHTTP(r.Context(), w, goerr.New("user_id is required"), http.StatusBadRequest)
			return
		}

		saved, err := uc.SaveUserLocation(r.Context(), &loc)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]any{
			"message": "User location saved successfully",
			"user_id": saved.UserID,
		})
	}
}

func getUserLocationHandler(uc *usecase.RecordUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")

		loc, err := uc.GetUserLocation(r.Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
				return
			}
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		respondJSON(w, r, http.StatusOK, loc)
	}
}

// createEmergencyHandler stores an emergency dispatch record reported by
// an external dispatcher
func createEmergencyHandler(uc *usecase.RecordUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec model.EmergencyRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}
		if rec.CallID == "" {
			errutil.HandleHTTP(r.Context(), w, goerr.New("call_id is required"), http.StatusBadRequest)
			return
		}

		created, err := uc.CreateEmergency(r.Context(), &rec)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]any{
			"message": "Emergency record stored successfully",
			"call_id": created.CallID,
		})
	}
}

func createMedicalRecordHandler(uc *usecase.RecordUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec model.MedicalRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}
		if rec.CallID == "" {
			errutil.HandleHTTP(r.Context(), w, goerr.New("call_id is required"), http.StatusBadRequest)
			return
		}

		created, err := uc.CreateMedicalRecord(r.Context(), &rec)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]any{
			"message": "Medical record stored successfully",
			"call_id": created.CallID,
		})
	}
}

// statusHandler reports everything stored under a call_id
func statusHandler(uc *usecase.RecordUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callID := r.URL.Query().Get("call_id")
		if callID == "" {
			errutil.HandleHTTP(r.Context(), w, goerr.New("call_id is required"), http.StatusBadRequest)
			return
		}

		report, err := uc.GetStatus(r.Context(), callID)
		if err != nil {
			if errors.Is(err, usecase.ErrNoRecords) {
				errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
				return
			}
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		respondJSON(w, r, http.StatusOK, report)
	}
}
