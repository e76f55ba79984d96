package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"astrasafe/cmd/fx/quiz_fx"
	"astrasafe/internal/config"
	"astrasafe/internal/models/request_models"
	"astrasafe/internal/persona"
	"astrasafe/internal/services"
	"astrasafe/pkg/metrics"
)

func newQuizCmd() *cobra.Command {
	var (
		req     request_models.QuizRequest
		catalog string
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Classify quiz answers offline and print the persona as JSON",
		Long: `Runs the persona engine without a database.

Examples:
  astrasafe quiz --comfort low --solo 0-1 --night avoid --transport walk --trigger crowds
  astrasafe quiz --comfort high --solo 5+ --night comfortable --transport ride-share --catalog personas.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if catalog != "" {
				cfg.PersonaCatalog = catalog
			}

			cat, err := quiz_fx.LoadCatalog(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			svc := services.NewQuizService(persona.NewEngine(cat), zap.NewNop(), metrics.New())

			res, err := svc.Classify(cmd.Context(), req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.ComfortLevel, "comfort", "", "Comfort level (low|medium|high)")
	f.StringVar(&req.SoloExperience, "solo", "", "Solo trips taken (0-1|2-4|5+)")
	f.StringVar(&req.NightTravel, "night", "", "Night travel (avoid|neutral|comfortable)")
	f.StringVar(&req.TransportConfidence, "transport", "", "Transport confidence (walk|metro|ride-share)")
	f.StringSliceVar(&req.AnxietyTriggers, "trigger", nil, "Anxiety trigger, repeatable")
	f.StringVar(&catalog, "catalog", "", "Persona catalog YAML (overrides ASTRASAFE_PERSONA_CATALOG)")
	return cmd
}
