package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"astrasafe/internal/models/request_models"
	"astrasafe/internal/models/response_models"
	"astrasafe/internal/persona"
	"astrasafe/pkg/metrics"
	"astrasafe/pkg/utils"
)

type QuizServiceInterface interface {
	Classify(ctx context.Context, request request_models.QuizRequest) (response_models.QuizResultResponse, error)
	Options() response_models.QuizOptionsResponse
}

// QuizService is stateless apart from the read-only engine and may be shared across requests.
type QuizService struct {
	engine  *persona.Engine
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewQuizService(engine *persona.Engine, logger *zap.Logger, m *metrics.Metrics) QuizServiceInterface {
	return &QuizService{
		engine:  engine,
		logger:  logger.Named("quiz"),
		metrics: m,
	}
}

func (q *QuizService) Classify(ctx context.Context, request request_models.QuizRequest) (response_models.QuizResultResponse, error) {
	result, err := q.engine.Classify(persona.Answers{
		ComfortLevel:        persona.ComfortLevel(request.ComfortLevel),
		SoloExperience:      persona.SoloExperience(request.SoloExperience),
		NightTravel:         persona.NightTravel(request.NightTravel),
		TransportConfidence: persona.TransportConfidence(request.TransportConfidence),
		AnxietyTriggers:     request.AnxietyTriggers,
	})
	if err != nil {
		q.metrics.QuizRejected()
		q.logger.Debug("quiz rejected", zap.Error(err))
		return response_models.QuizResultResponse{}, fmt.Errorf("%w: %w", utils.ErrInvalidQuizAnswers, err)
	}

	q.metrics.QuizClassified(result.Persona)
	q.logger.Debug("quiz classified",
		zap.String("persona", result.Persona),
		zap.Int("risk_index", result.RiskIndex),
		zap.Int("triggers", len(request.AnxietyTriggers)))

	return response_models.QuizResultResponse{
		Persona:         result.Persona,
		Recommendations: result.Recommendations,
	}, nil
}

func (q *QuizService) Options() response_models.QuizOptionsResponse {
	catalog := q.engine.Catalog()
	return response_models.QuizOptionsResponse{
		ComfortLevel:        toStrings(persona.ComfortLevels),
		SoloExperience:      toStrings(persona.SoloExperiences),
		NightTravel:         toStrings(persona.NightTravels),
		TransportConfidence: toStrings(persona.TransportConfidences),
		AnxietyTriggers:     catalog.KnownTriggers(),
		Personas:            catalog.BandNames(),
	}
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
