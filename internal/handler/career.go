package handler

import (
	"bytes"
	"encoding/json"

	"pathpilot/internal/domain"
	"pathpilot/internal/dto"
	"pathpilot/internal/fallback"
	"pathpilot/internal/logger"
	"pathpilot/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CareerHandler handles the model-backed career endpoints
type CareerHandler struct {
	service service.AdvisorService
}

// NewCareerHandler creates a new CareerHandler instance
func NewCareerHandler(service service.AdvisorService) *CareerHandler {
	return &CareerHandler{
		service: service,
	}
}

// Trending godoc
// @Summary Trending careers
// @Description Asks the model for currently trending careers. Any failure is answered with the canned trending list, so this endpoint always returns 200.
// @Tags careers
// @Accept json
// @Produce json
// @Param request body dto.TrendingRequest false "Optional count (default 24)"
// @Success 200 {object} domain.Envelope "Envelope wrapping a Career array"
// @Router /trending [post]
func (h *CareerHandler) Trending(c *fiber.Ctx) error {
	var req dto.TrendingRequest
	if err := parseBody(c, &req); err != nil {
		logger.Get().Warn("Ignoring malformed trending request body", zap.Error(err))
		req = dto.TrendingRequest{}
	}

	env, err := h.service.Trending(c.UserContext(), &req)
	if err != nil {
		logger.Get().Warn("Trending generation failed, serving fallback", zap.Error(err))
		env, err = h.service.Fallback(fallback.KindTrending, fallback.Params{Count: req.Count})
		if err != nil {
			return err
		}
	}
	return c.JSON(env)
}

// Recommend godoc
// @Summary Preference-based recommendations
// @Description Recommends careers that fit the supplied preferences.
// @Tags careers
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest false "Preferences and limit (default 12)"
// @Success 200 {object} domain.Envelope "Envelope wrapping a Recommendation list"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recommend [post]
func (h *CareerHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	env, err := h.service.Recommend(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Enrich godoc
// @Summary Enrich career titles
// @Description Returns full career details keyed by each requested title.
// @Tags careers
// @Accept json
// @Produce json
// @Param request body dto.EnrichRequest false "Career titles"
// @Success 200 {object} domain.Envelope "Envelope wrapping an object keyed by title"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /enrich [post]
func (h *CareerHandler) Enrich(c *fiber.Ctx) error {
	var req dto.EnrichRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	env, err := h.service.Enrich(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// Quiz godoc
// @Summary Generate a career quiz
// @Description Generates a multiple-choice quiz (default 5 questions).
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest false "Quiz configuration"
// @Success 200 {object} domain.Envelope "Envelope wrapping a Quiz"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz [post]
func (h *CareerHandler) Quiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	env, err := h.service.Quiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// CareersByCategory godoc
// @Summary Careers in a category
// @Description Lists careers within one category (default 15).
// @Tags careers
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest false "Category and count"
// @Success 200 {object} domain.Envelope "Envelope wrapping a Career array"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /careers-by-category [post]
func (h *CareerHandler) CareersByCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	env, err := h.service.CareersByCategory(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// CareerRecommendations godoc
// @Summary Recommendations from quiz answers
// @Description Recommends careers (default 3) based on prior quiz answers.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.CareerRecommendationsRequest false "Quiz answers and limit"
// @Success 200 {object} domain.Envelope "Envelope wrapping a Recommendation list"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /career-recommendations [post]
func (h *CareerHandler) CareerRecommendations(c *fiber.Ctx) error {
	var req dto.CareerRecommendationsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	env, err := h.service.CareerRecommendations(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(env)
}

// parseBody decodes a JSON body into out. An empty body leaves out at its
// zero value so every parameter takes its default.
func parseBody(c *fiber.Ctx, out interface{}) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON", err)
	}
	return nil
}
