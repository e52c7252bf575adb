package service

import (
	"context"

	"pathpilot/internal/domain"
	"pathpilot/internal/dto"
	"pathpilot/internal/fallback"
	"pathpilot/internal/logger"
	"pathpilot/internal/metrics"
	"pathpilot/internal/prompt"

	"go.uber.org/zap"
)

// AdvisorService defines the model-backed career operations. Every method
// returns either the live envelope, a fallback envelope after quota
// exhaustion, or the non-quota error.
type AdvisorService interface {
	Trending(ctx context.Context, req *dto.TrendingRequest) (*domain.Envelope, error)
	Recommend(ctx context.Context, req *dto.RecommendRequest) (*domain.Envelope, error)
	Enrich(ctx context.Context, req *dto.EnrichRequest) (*domain.Envelope, error)
	Quiz(ctx context.Context, req *dto.QuizRequest) (*domain.Envelope, error)
	CareersByCategory(ctx context.Context, req *dto.CategoryRequest) (*domain.Envelope, error)
	CareerRecommendations(ctx context.Context, req *dto.CareerRecommendationsRequest) (*domain.Envelope, error)
	// Fallback returns the canned envelope for kind without calling the model.
	Fallback(kind fallback.Kind, params fallback.Params) (*domain.Envelope, error)
}

// FallbackSelector picks the canned envelope for a kind.
type FallbackSelector interface {
	Select(kind fallback.Kind, params fallback.Params) (*domain.Envelope, error)
}

type advisorService struct {
	model    domain.ModelClient
	selector FallbackSelector
}

// NewAdvisorService creates a new instance of advisorService
func NewAdvisorService(model domain.ModelClient, selector FallbackSelector) AdvisorService {
	return &advisorService{model: model, selector: selector}
}

func (s *advisorService) Trending(ctx context.Context, req *dto.TrendingRequest) (*domain.Envelope, error) {
	count := prompt.IntOr(req.Count, prompt.DefaultTrendingCount)
	return s.generate(ctx, prompt.Trending(count), fallback.KindTrending, fallback.Params{Count: req.Count})
}

func (s *advisorService) Recommend(ctx context.Context, req *dto.RecommendRequest) (*domain.Envelope, error) {
	limit := prompt.IntOr(req.Limit, prompt.DefaultRecommendLimit)
	return s.generate(ctx, prompt.Recommend(req.Preferences, limit), fallback.KindRecommendations, fallback.Params{Limit: req.Limit})
}

func (s *advisorService) Enrich(ctx context.Context, req *dto.EnrichRequest) (*domain.Envelope, error) {
	return s.generate(ctx, prompt.Enrich(req.Titles), fallback.KindEnrichment, fallback.Params{Titles: req.Titles})
}

func (s *advisorService) Quiz(ctx context.Context, req *dto.QuizRequest) (*domain.Envelope, error) {
	n := prompt.IntOr(req.NumQuestions, prompt.DefaultQuizQuestions)
	if n < 0 {
		n = 0
	}
	p := prompt.Quiz(prompt.QuizOptions{
		Topic:         req.Topic,
		Subcategory:   req.Subcategory,
		Difficulty:    req.Difficulty,
		QuestionStyle: req.QuestionStyle,
		NumQuestions:  n,
	})
	// The fallback sizes itself from the raw request so an omitted count
	// gets the full canned quiz rather than the prompt default.
	return s.generate(ctx, p, fallback.KindQuiz, fallback.Params{NumQuestions: req.NumQuestions, Topic: req.Topic})
}

func (s *advisorService) CareersByCategory(ctx context.Context, req *dto.CategoryRequest) (*domain.Envelope, error) {
	count := prompt.IntOr(req.Count, prompt.DefaultCategoryCount)
	return s.generate(ctx, prompt.CareersByCategory(req.Category, count), fallback.KindCategoryCareers,
		fallback.Params{Category: req.Category, Count: req.Count})
}

func (s *advisorService) CareerRecommendations(ctx context.Context, req *dto.CareerRecommendationsRequest) (*domain.Envelope, error) {
	limit := prompt.IntOr(req.Limit, prompt.DefaultCareerRecommendations)
	return s.generate(ctx, prompt.CareerRecommendations(req.Answers, limit), fallback.KindRecommendations, fallback.Params{Limit: req.Limit})
}

func (s *advisorService) Fallback(kind fallback.Kind, params fallback.Params) (*domain.Envelope, error) {
	env, err := s.selector.Select(kind, params)
	if err != nil {
		return nil, domain.NewInternalError("failed to build fallback payload", err)
	}
	metrics.Fallbacks.WithLabelValues(kind.String()).Inc()
	return env, nil
}

// generate makes one model call. Quota exhaustion is the only error that is
// recovered here; it is replaced with the fallback for kind.
func (s *advisorService) generate(ctx context.Context, p string, kind fallback.Kind, params fallback.Params) (*domain.Envelope, error) {
	provider := s.model.Provider()

	env, err := s.model.Generate(ctx, p)
	switch {
	case err == nil:
		metrics.ModelRequests.WithLabelValues(provider, metrics.OutcomeSuccess).Inc()
		return env, nil
	case domain.IsQuotaExceeded(err):
		metrics.ModelRequests.WithLabelValues(provider, metrics.OutcomeQuota).Inc()
		logger.Get().Warn("Model quota exceeded, serving fallback",
			zap.String("provider", provider),
			zap.Stringer("kind", kind))
		return s.Fallback(kind, params)
	default:
		metrics.ModelRequests.WithLabelValues(provider, metrics.OutcomeError).Inc()
		logger.Get().Error("Model request failed",
			zap.String("provider", provider),
			zap.Stringer("kind", kind),
			zap.Error(err))
		return nil, err
	}
}
