package service

import (
	"context"
	"errors"
	"testing"

	"pathpilot/internal/domain"
	"pathpilot/internal/dto"
	"pathpilot/internal/fallback"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) Generate(ctx context.Context, prompt string) (*domain.Envelope, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Envelope), args.Error(1)
}

func (m *MockModelClient) Provider() string {
	return "mock"
}

func intPtr(v int) *int { return &v }

func quotaModel() *MockModelClient {
	m := new(MockModelClient)
	m.On("Generate", mock.Anything, mock.Anything).Return(nil, domain.ErrQuotaExceeded)
	return m
}

func TestAdvisorService_LiveEnvelopePassesThrough(t *testing.T) {
	live, err := domain.ParseEnvelope([]byte(`{"candidates":[{"content":{"parts":[{"text":"[]"}]}}],"modelVersion":"x"}`))
	require.NoError(t, err)

	model := new(MockModelClient)
	model.On("Generate", mock.Anything, mock.AnythingOfType("string")).Return(live, nil).Once()

	svc := NewAdvisorService(model, fallback.NewSelector())
	env, err := svc.Trending(context.Background(), &dto.TrendingRequest{})
	require.NoError(t, err)
	assert.Same(t, live, env)
	model.AssertExpectations(t)
}

func TestAdvisorService_PromptDefaults(t *testing.T) {
	ok := domain.NewEnvelope("{}")
	tests := []struct {
		name string
		call func(AdvisorService) error
		want string
	}{
		{"trending count 24", func(s AdvisorService) error {
			_, err := s.Trending(context.Background(), &dto.TrendingRequest{})
			return err
		}, "List 24 trending careers"},
		{"recommend limit 12", func(s AdvisorService) error {
			_, err := s.Recommend(context.Background(), &dto.RecommendRequest{})
			return err
		}, "up to 12 careers"},
		{"quiz 5 questions", func(s AdvisorService) error {
			_, err := s.Quiz(context.Background(), &dto.QuizRequest{})
			return err
		}, "exactly 5 questions"},
		{"quiz zero questions", func(s AdvisorService) error {
			_, err := s.Quiz(context.Background(), &dto.QuizRequest{NumQuestions: intPtr(0)})
			return err
		}, "exactly 0 questions"},
		{"category count 15", func(s AdvisorService) error {
			_, err := s.CareersByCategory(context.Background(), &dto.CategoryRequest{Category: "Design"})
			return err
		}, `15 careers in the "Design" category`},
		{"career recommendations limit 3", func(s AdvisorService) error {
			_, err := s.CareerRecommendations(context.Background(), &dto.CareerRecommendationsRequest{})
			return err
		}, "recommend exactly 3 careers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := new(MockModelClient)
			var sent string
			model.On("Generate", mock.Anything, mock.AnythingOfType("string")).
				Run(func(args mock.Arguments) { sent = args.String(1) }).
				Return(ok, nil).Once()

			require.NoError(t, tt.call(NewAdvisorService(model, fallback.NewSelector())))
			assert.Contains(t, sent, tt.want)
		})
	}
}

func TestAdvisorService_QuotaFallbackMatchesSchema(t *testing.T) {
	svc := NewAdvisorService(quotaModel(), fallback.NewSelector())
	ctx := context.Background()

	t.Run("trending", func(t *testing.T) {
		env, err := svc.Trending(ctx, &dto.TrendingRequest{Count: intPtr(3)})
		require.NoError(t, err)
		var careers []domain.Career
		require.NoError(t, env.DecodeText(&careers))
		assert.Len(t, careers, len(fallback.TrendingCareers()))
	})

	t.Run("quiz omitted count uses full canned quiz", func(t *testing.T) {
		env, err := svc.Quiz(ctx, &dto.QuizRequest{Topic: "Finance"})
		require.NoError(t, err)
		var quiz domain.Quiz
		require.NoError(t, env.DecodeText(&quiz))
		assert.Len(t, quiz.Questions, fallback.DefaultQuizSize)
		assert.Equal(t, "Finance Career Quiz", quiz.Title)
	})

	t.Run("quiz zero questions", func(t *testing.T) {
		env, err := svc.Quiz(ctx, &dto.QuizRequest{NumQuestions: intPtr(0)})
		require.NoError(t, err)
		var quiz domain.Quiz
		require.NoError(t, env.DecodeText(&quiz))
		assert.NotNil(t, quiz.Questions)
		assert.Empty(t, quiz.Questions)
	})

	t.Run("recommend", func(t *testing.T) {
		env, err := svc.Recommend(ctx, &dto.RecommendRequest{Limit: intPtr(2)})
		require.NoError(t, err)
		var list domain.RecommendationList
		require.NoError(t, env.DecodeText(&list))
		assert.Len(t, list.Recommendations, 2)
	})

	t.Run("career recommendations", func(t *testing.T) {
		env, err := svc.CareerRecommendations(ctx, &dto.CareerRecommendationsRequest{})
		require.NoError(t, err)
		var list domain.RecommendationList
		require.NoError(t, env.DecodeText(&list))
		assert.NotEmpty(t, list.Recommendations)
	})

	t.Run("careers by category", func(t *testing.T) {
		env, err := svc.CareersByCategory(ctx, &dto.CategoryRequest{Category: "technology", Count: intPtr(2)})
		require.NoError(t, err)
		var careers []domain.Career
		require.NoError(t, env.DecodeText(&careers))
		require.Len(t, careers, 2)
		assert.Equal(t, "Technology", careers[0].Category)
	})

	t.Run("enrich", func(t *testing.T) {
		env, err := svc.Enrich(ctx, &dto.EnrichRequest{Titles: []string{"Data Scientist", "Astronaut"}})
		require.NoError(t, err)
		var byTitle map[string]domain.Career
		require.NoError(t, env.DecodeText(&byTitle))
		assert.Contains(t, byTitle, "Data Scientist")
		assert.NotContains(t, byTitle, "Astronaut")
	})
}

func TestAdvisorService_NonQuotaErrorsPropagate(t *testing.T) {
	errs := []error{
		domain.NewConfigurationError("GEMINI_API_KEY is not configured"),
		&domain.UpstreamError{StatusCode: 503, Body: "unavailable"},
		errors.New("boom"),
	}
	for _, want := range errs {
		model := new(MockModelClient)
		model.On("Generate", mock.Anything, mock.Anything).Return(nil, want)

		_, err := NewAdvisorService(model, fallback.NewSelector()).Quiz(context.Background(), &dto.QuizRequest{})
		assert.Same(t, want, err)
	}
}

type failingSelector struct{}

func (failingSelector) Select(fallback.Kind, fallback.Params) (*domain.Envelope, error) {
	return nil, errors.New("no catalog")
}

func TestAdvisorService_FallbackFailureIsInternal(t *testing.T) {
	_, err := NewAdvisorService(quotaModel(), failingSelector{}).Trending(context.Background(), &dto.TrendingRequest{})
	require.Error(t, err)
	assert.Equal(t, domain.CodeInternal, domain.CodeOf(err))
}
