package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rakshak-ai/rakshak/pkg/cli/config"
	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/domain/types"
	"github.com/rakshak-ai/rakshak/pkg/repository/memory"
	"github.com/rakshak-ai/rakshak/pkg/service/genai"
	"github.com/rakshak-ai/rakshak/pkg/usecase"
	"github.com/rakshak-ai/rakshak/pkg/utils/logging"
)

func cmdTriage() *cli.Command {
	var location string
	var geminiCfg config.Gemini
	var knowledgeCfg config.Knowledge
	var notifyCfg config.Notify

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "location",
			Usage:       "Known patient location used when none is found in the query",
			Sources:     cli.EnvVars("RAKSHAK_LOCATION"),
			Destination: &location,
		},
	}
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, knowledgeCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)

	return &cli.Command{
		Name:      "triage",
		Aliases:   []string{"t"},
		Usage:     "Run the triage pipeline once for a medical query",
		ArgsUsage: "<query>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			query := c.Args().First()
			if query == "" {
				return goerr.New("query argument is required")
			}

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize Gemini client")
			}
			if llmClient == nil {
				return goerr.New("gemini-project is required for triage")
			}
			genAISvc, err := genai.New(llmClient)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize genai service")
			}

			// One-shot runs keep records in memory only
			ucOpts := []usecase.Option{usecase.WithGenAI(genAISvc)}

			store, err := knowledgeCfg.Configure(ctx)
			if err != nil {
				logging.Default().Warn("knowledge index unavailable, retrieval degrades to sentinel",
					"error", err.Error())
			} else if store != nil {
				ucOpts = append(ucOpts, usecase.WithKnowledge(store))
			}

			notifier, err := notifyCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize notifier")
			}
			if notifier != nil {
				ucOpts = append(ucOpts,
					usecase.WithNotifier(notifier),
					usecase.WithEmergencyContact(notifyCfg.EmergencyChannel()),
				)
			}

			uc := usecase.New(memory.New(), ucOpts...)

			result, err := uc.Triage.Run(ctx, &model.TriageQuery{
				Text:         query,
				UserLocation: location,
			})
			if err != nil {
				return goerr.Wrap(err, "triage run failed")
			}

			printTriageResult(result)
			return nil
		},
	}
}

func printTriageResult(result *model.TriageResult) {
	switch {
	case result.Decision == types.DecisionEmergency && result.Emergency != nil:
		color.New(color.FgRed, color.Bold).Println("EMERGENCY")
		fmt.Printf("  Call ID:          %s\n", result.Emergency.CallID)
		fmt.Printf("  Call SID:         %s\n", result.Emergency.CallSID)
		fmt.Printf("  Patient:          %s\n", result.Emergency.PatientName)
		fmt.Printf("  Location:         %s\n", result.Emergency.PatientLocation)
		if result.Emergency.Simulated {
			color.Yellow("  (alert was simulated, no notifier configured)")
		}

	case result.Decision == types.DecisionNonEmergency && result.Specialist != nil:
		color.New(color.FgGreen, color.Bold).Println("NON-EMERGENCY")
		fmt.Printf("  Call ID:          %s\n", result.Specialist.CallID)
		fmt.Printf("  Patient:          %s\n", result.Specialist.Patient.Name)
		fmt.Printf("  Chief complaint:  %s\n", result.Specialist.ChiefComplaint)
		fmt.Printf("  Specialty:        %s\n", result.Specialist.RecommendedSpecialty)
		fmt.Printf("  Analysis:         %s\n", result.Specialist.AIAnalysis)
		for _, symptom := range result.Specialist.ReportedSymptoms {
			fmt.Printf("    - %s\n", symptom)
		}

	default:
		color.New(color.FgYellow, color.Bold).Println("UNCLASSIFIED")
		if result.ErrorDetail != "" {
			fmt.Printf("  Detail: %s\n", result.ErrorDetail)
		}
	}
}
