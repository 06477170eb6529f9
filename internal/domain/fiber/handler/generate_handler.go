package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobtimizer/jobtimizer/internal/dto"
	"github.com/jobtimizer/jobtimizer/internal/middleware"
	"github.com/jobtimizer/jobtimizer/internal/model"
	"github.com/jobtimizer/jobtimizer/internal/usecase"
	"github.com/jobtimizer/jobtimizer/internal/util"
)

type GenerateHandler struct {
	uc *usecase.GenerationUsecase
}

func NewGenerateHandler(uc *usecase.GenerationUsecase) *GenerateHandler {
	return &GenerateHandler{uc: uc}
}

func (h *GenerateHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/generate", middleware.RateLimiter(2, 10*time.Second), h.Generate)
	app.Post("/refine", middleware.RateLimiter(2, 10*time.Second), h.Refine)
	app.Get("/occupations", h.SearchOccupations)
	app.Get("/seniority-levels", h.SeniorityLevels)
}

func (h *GenerateHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateJobAdRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "ungültiger Request-Body",
		}, err)
	}
	if strings.TrimSpace(req.JobTitle) == "" || req.UserID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "user_id und job_title sind erforderlich",
		})
	}

	result, err := h.uc.GenerateJobAd(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Stellenanzeige konnte nicht generiert werden",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Stellenanzeige generiert",
		Data:    result,
	})
}

func (h *GenerateHandler) Refine(c *fiber.Ctx) error {
	var req dto.RefineRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "ungültiger Request-Body",
		}, err)
	}
	if req.OriginalAd == "" || req.UserID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "user_id und original_ad sind erforderlich",
		})
	}

	refined, err := h.uc.RefineJobAd(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Stellenanzeige konnte nicht verfeinert werden",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Stellenanzeige verfeinert",
		Data:    dto.RefineResponse{RefinedAd: refined},
	})
}

func (h *GenerateHandler) SearchOccupations(c *fiber.Ctx) error {
	query := c.Query("q")
	limit := c.QueryInt("limit", 5)

	suggestions, err := h.uc.SearchJobTitles(c.UserContext(), query, limit)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Berufssuche fehlgeschlagen",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Berufsvorschläge geladen",
		Data:    suggestions,
	})
}

func (h *GenerateHandler) SeniorityLevels(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Erfahrungsstufen geladen",
		Data:    model.SeniorityLevels,
	})
}
