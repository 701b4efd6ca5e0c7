package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"text/template"

	"github.com/rakshak-ai/rakshak/pkg/domain/types"
	"github.com/rakshak-ai/rakshak/pkg/utils/logging"
)

//go:embed prompt/classify.md
var classifyPromptTmpl string

var classifyPrompt = template.Must(template.New("classify").Parse(classifyPromptTmpl))

// promptData holds the fields shared by all stage prompt templates
type promptData struct {
	Query   string
	Context string
}

// classify decides emergency vs non-emergency for the query. The oracle
// is constrained to answer a single YES/NO token; only an exact YES
// (case-normalized) classifies as emergency. Malformed output and oracle
// failures both fall back to non_emergency so a broken provider can
// neither trigger a false dispatch nor block triage. The returned detail
// is non-empty only when an oracle failure was absorbed.
func (uc *TriageUseCase) classify(ctx context.Context, query string) (types.Decision, string) {
	ragContext := uc.retriever.GetContext(ctx, query)

	var buf bytes.Buffer
	if err := classifyPrompt.Execute(&buf, promptData{Query: query, Context: ragContext}); err != nil {
		logging.From(ctx).Error("failed to render classify prompt", "error", err.Error())
		return types.DecisionNonEmergency, err.Error()
	}

	response, err := uc.genAI.Generate(ctx, buf.String())
	if err != nil {
		logging.From(ctx).Warn("classification oracle failed, defaulting to non-emergency",
			"error", err.Error())
		return types.DecisionNonEmergency, err.Error()
	}

	if strings.ToUpper(strings.TrimSpace(response)) == "YES" {
		return types.DecisionEmergency, ""
	}
	return types.DecisionNonEmergency, ""
}
