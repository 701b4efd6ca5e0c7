package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/domain/types"
	"github.com/rakshak-ai/rakshak/pkg/usecase"
	"github.com/rakshak-ai/rakshak/pkg/utils/errutil"
)

type analyzeRequest struct {
	Query        string `json:"query"`
	UserLocation string `json:"user_location"`
}

type ambulanceLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type emergencyResult struct {
	CallSID           string             `json:"call_sid"`
	AmbulanceLocation *ambulanceLocation `json:"ambulance_location"`
	Status            string             `json:"status"`
}

type analyzeResponse struct {
	Classification string `json:"classification"`
	Message        string `json:"message"`
	Result         any    `json:"result,omitempty"`
	Error          string `json:"error,omitempty"`
}

// analyzeHandler runs the triage pipeline for a medical query and
// reports the outcome of whichever branch was taken
func analyzeHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if uc.Triage == nil {
			errutil.HandleHTTP(r.Context(), w, goerr.New("triage pipeline is not configured"), http.StatusServiceUnavailable)
			return
		}

		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}
		if req.Query == "" {
			errutil.HandleHTTP(r.Context(), w, goerr.New("query is required"), http.StatusBadRequest)
			return
		}

		result, err := uc.Triage.Run(r.Context(), &model.TriageQuery{
			Text:         req.Query,
			UserLocation: req.UserLocation,
		})
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "triage run failed"), http.StatusInternalServerError)
			return
		}

		switch {
		case result.Decision == types.DecisionEmergency && result.Emergency != nil:
			respondJSON(w, r, http.StatusOK, analyzeResponse{
				Classification: string(types.DecisionEmergency),
				Message:        "Emergency detected! Emergency services have been notified.",
				Result: emergencyResult{
					CallSID: result.Emergency.CallSID,
					AmbulanceLocation: &ambulanceLocation{
						Latitude:  result.Emergency.AmbulanceLatitude,
						Longitude: result.Emergency.AmbulanceLongitude,
					},
					Status: "Emergency call initiated",
				},
			})

		case result.Decision == types.DecisionNonEmergency && result.Specialist != nil:
			respondJSON(w, r, http.StatusOK, analyzeResponse{
				Classification: string(types.DecisionNonEmergency),
				Message:        "Non-emergency case. Specialist recommendation provided.",
				Result:         result.Specialist,
			})

		default:
			respondJSON(w, r, http.StatusOK, analyzeResponse{
				Classification: string(types.DecisionUnknown),
				Message:        "Could not classify the query",
				Error:          result.ErrorDetail,
			})
		}
	}
}
