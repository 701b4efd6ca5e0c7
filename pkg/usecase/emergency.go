package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/utils/logging"
)

//go:embed prompt/emergency_extract.md
var extractPromptTmpl string

var extractPrompt = template.Must(template.New("emergency_extract").Parse(extractPromptTmpl))

// alertMessage is the fixed text of the outbound emergency alert
const alertMessage = "This is an emergency alert. A user requires immediate assistance."

// Default dispatch coordinates used until responder positions come from
// a live dispatch system.
const (
	defaultDriverLatitude   = 28.5494
	defaultDriverLongitude  = 77.2500
	defaultPatientLatitude  = 28.5494
	defaultPatientLongitude = 77.2588
)

// extractedEmergency is the structured output of the extraction prompt
type extractedEmergency struct {
	CallID          string `json:"call_id"`
	PatientName     string `json:"patient_name"`
	PatientLocation string `json:"patient_location"`
}

// handleEmergency runs the emergency branch: extract dispatch fields
// from the query, place the alert, and store the dispatch record.
// Nothing in this branch is allowed to fail the run; every fault
// degrades to a default so emergency handling is never blocked by a
// formatting or channel error.
func (uc *TriageUseCase) handleEmergency(ctx context.Context, query *model.TriageQuery) *model.DispatchResult {
	logger := logging.From(ctx)

	extracted := uc.extractEmergency(ctx, query)

	result := &model.DispatchResult{
		CallID:             extracted.CallID,
		PatientName:        extracted.PatientName,
		PatientLocation:    extracted.PatientLocation,
		AmbulanceLatitude:  defaultDriverLatitude,
		AmbulanceLongitude: defaultDriverLongitude,
	}

	result.CallSID, result.Simulated = uc.placeAlert(ctx, extracted.CallID)

	record := &model.EmergencyRecord{
		CallID: extracted.CallID,
		Status: "dispatched",
		Driver: model.Driver{
			Name:      "Ambulance Driver",
			Status:    "en route",
			Latitude:  defaultDriverLatitude,
			Longitude: defaultDriverLongitude,
		},
		Patient: model.PatientLocation{
			Location:  extracted.PatientLocation,
			Latitude:  defaultPatientLatitude,
			Longitude: defaultPatientLongitude,
		},
	}

	if _, err := uc.repo.Emergency().Create(ctx, record); err != nil {
		// The dispatch already happened; a storage fault must not undo it
		logger.Error("failed to store emergency record",
			"call_id", extracted.CallID, "error", err.Error())
	}

	return result
}

// extractEmergency asks the oracle for dispatch fields and falls back to
// defaults on any oracle or parse failure. Defaults also fill individual
// fields the oracle left empty.
func (uc *TriageUseCase) extractEmergency(ctx context.Context, query *model.TriageQuery) extractedEmergency {
	logger := logging.From(ctx)
	ragContext := uc.retriever.GetContext(ctx, query.Text)

	var extracted extractedEmergency

	var buf bytes.Buffer
	if err := extractPrompt.Execute(&buf, promptData{Query: query.Text, Context: ragContext}); err != nil {
		logger.Error("failed to render extraction prompt", "error", err.Error())
		return uc.applyExtractionDefaults(extracted, query)
	}

	response, err := uc.genAI.Generate(ctx, buf.String())
	if err != nil {
		logger.Warn("extraction oracle failed, using defaults", "error", err.Error())
		return uc.applyExtractionDefaults(extracted, query)
	}

	if err := json.Unmarshal([]byte(stripCodeFence(response)), &extracted); err != nil {
		logger.Warn("failed to parse extraction response, using defaults",
			"error", err.Error(), "response", response)
		extracted = extractedEmergency{}
	}

	return uc.applyExtractionDefaults(extracted, query)
}

func (uc *TriageUseCase) applyExtractionDefaults(extracted extractedEmergency, query *model.TriageQuery) extractedEmergency {
	if extracted.CallID == "" {
		extracted.CallID = fmt.Sprintf("EMERGENCY_%d", time.Now().Unix())
	}
	if extracted.PatientName == "" {
		extracted.PatientName = "Emergency Patient"
	}
	if extracted.PatientLocation == "" {
		if query.UserLocation != "" {
			extracted.PatientLocation = query.UserLocation
		} else {
			extracted.PatientLocation = "Unknown Location"
		}
	}
	return extracted
}

// placeAlert sends the outbound alert and returns the call identifier.
// A missing or failing notifier degrades to a synthetic identifier; the
// record is stored either way.
func (uc *TriageUseCase) placeAlert(ctx context.Context, callID string) (string, bool) {
	logger := logging.From(ctx)

	if uc.notifier == nil {
		logger.Info("notifier not configured, using simulated call identifier", "call_id", callID)
		return "SIMULATED_" + callID, true
	}

	sid, err := uc.notifier.Notify(ctx, uc.emergencyContact, alertMessage)
	if err != nil {
		logger.Error("failed to place emergency alert, using simulated call identifier",
			"call_id", callID, "error", err.Error())
		return "SIMULATED_" + callID, true
	}

	logger.Info("emergency alert placed", "call_id", callID, "call_sid", sid)
	return sid, false
}
