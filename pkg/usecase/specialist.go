package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"text/template"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/utils/logging"
)

//go:embed prompt/specialist.md
var specialistPromptTmpl string

var specialistPrompt = template.Must(template.New("specialist").Parse(specialistPromptTmpl))

// specialistResponse is the structured output of the specialist prompt
type specialistResponse struct {
	PatientName          string   `json:"patient_name"`
	CallID               string   `json:"call_id"`
	ChiefComplaint       string   `json:"chief_complaint"`
	ReportedSymptoms     []string `json:"reported_symptoms"`
	AIAnalysis           string   `json:"ai_analysis"`
	RecommendedSpecialty string   `json:"recommended_specialty"`
}

// handleSpecialist runs the non-emergency branch: ask the oracle for a
// structured referral and store it. Unlike the emergency branch, an
// unusable oracle response is surfaced as an error rather than padded
// with fabricated defaults.
func (uc *TriageUseCase) handleSpecialist(ctx context.Context, query *model.TriageQuery) (*model.MedicalRecord, error) {
	ragContext := uc.retriever.GetContext(ctx, query.Text)

	var buf bytes.Buffer
	if err := specialistPrompt.Execute(&buf, promptData{Query: query.Text, Context: ragContext}); err != nil {
		return nil, goerr.Wrap(err, "failed to render specialist prompt")
	}

	response, err := uc.genAI.Generate(ctx, buf.String())
	if err != nil {
		return nil, goerr.Wrap(ErrSpecialistResponse, "specialist oracle failed",
			goerr.V("cause", err.Error()))
	}

	var parsed specialistResponse
	if err := json.Unmarshal([]byte(stripCodeFence(response)), &parsed); err != nil {
		return nil, goerr.Wrap(ErrSpecialistResponse, "failed to parse specialist response",
			goerr.V("cause", err.Error()), goerr.V("response", response))
	}

	if parsed.PatientName == "" {
		parsed.PatientName = "Not provided"
	}
	if parsed.CallID == "" {
		parsed.CallID = "NA"
	}

	record := &model.MedicalRecord{
		CallID: parsed.CallID,
		Patient: model.PatientInfo{
			Name:     parsed.PatientName,
			Date:     time.Now().Format("2006-01-02"),
			Duration: "N/A",
		},
		ChiefComplaint:       parsed.ChiefComplaint,
		ReportedSymptoms:     parsed.ReportedSymptoms,
		AIAnalysis:           parsed.AIAnalysis,
		RecommendedSpecialty: parsed.RecommendedSpecialty,
	}

	if _, err := uc.repo.MedicalRecord().Create(ctx, record); err != nil {
		// The referral is still valid for the caller even if storage is down
		logging.From(ctx).Error("failed to store medical record",
			"call_id", record.CallID, "error", err.Error())
	}

	return record, nil
}
