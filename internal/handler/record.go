package handler

import (
	"pathpilot/internal/domain"
	"pathpilot/internal/dto"
	"pathpilot/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// RecordHandler handles the document store endpoints
type RecordHandler struct {
	service service.RecordService
}

// NewRecordHandler creates a new RecordHandler instance
func NewRecordHandler(service service.RecordService) *RecordHandler {
	return &RecordHandler{
		service: service,
	}
}

// ListCareers godoc
// @Summary List stored careers
// @Description Returns up to 100 stored careers.
// @Tags records
// @Produce json
// @Success 200 {array} domain.Career
// @Failure 500 {object} dto.ErrorResponse
// @Router /careers [get]
func (h *RecordHandler) ListCareers(c *fiber.Ctx) error {
	docs, err := h.service.ListCareers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// CreateCareer godoc
// @Summary Store a career
// @Description Stores the posted career object as given.
// @Tags records
// @Accept json
// @Produce json
// @Param career body domain.Career true "Career"
// @Success 200 {object} dto.InsertResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /careers [post]
func (h *RecordHandler) CreateCareer(c *fiber.Ctx) error {
	var doc domain.Document
	if err := parseBody(c, &doc); err != nil {
		return err
	}
	id, err := h.service.CreateCareer(c.UserContext(), nonNil(doc))
	if err != nil {
		return err
	}
	return c.JSON(dto.InsertResponse{InsertedID: id})
}

// CreateQuizResult godoc
// @Summary Store a quiz result
// @Description Stores the posted object with a server-assigned createdAt.
// @Tags records
// @Accept json
// @Produce json
// @Param result body dto.QuizResultResponse true "Quiz result, normally carrying userId"
// @Success 200 {object} dto.InsertResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz-results [post]
func (h *RecordHandler) CreateQuizResult(c *fiber.Ctx) error {
	var doc domain.Document
	if err := parseBody(c, &doc); err != nil {
		return err
	}
	id, err := h.service.CreateQuizResult(c.UserContext(), nonNil(doc))
	if err != nil {
		return err
	}
	return c.JSON(dto.InsertResponse{InsertedID: id})
}

// ListQuizResults godoc
// @Summary Quiz results for a user
// @Description Returns the user's stored quiz results, newest first.
// @Tags records
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} dto.QuizResultResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz-results/{userId} [get]
func (h *RecordHandler) ListQuizResults(c *fiber.Ctx) error {
	docs, err := h.service.ListQuizResults(c.UserContext(), utils.CopyString(c.Params("userId")))
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router / [get]
func Health(c *fiber.Ctx) error {
	return c.SendString("OK")
}

func nonNil(doc domain.Document) domain.Document {
	if doc == nil {
		return domain.Document{}
	}
	return doc
}
