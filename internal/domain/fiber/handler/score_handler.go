package handler

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobtimizer/jobtimizer/internal/dto"
	"github.com/jobtimizer/jobtimizer/internal/middleware"
	"github.com/jobtimizer/jobtimizer/internal/response"
	"github.com/jobtimizer/jobtimizer/internal/usecase"
	"github.com/jobtimizer/jobtimizer/internal/util"
)

type ScoreHandler struct {
	uc *usecase.ScoringUsecase
}

func NewScoreHandler(uc *usecase.ScoringUsecase) *ScoreHandler {
	return &ScoreHandler{uc: uc}
}

func (h *ScoreHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/score", middleware.RateLimiter(1, 4*time.Second), h.Score)
	app.Post("/score/upload", middleware.RateLimiter(1, 4*time.Second), h.ScoreUpload)
	app.Get("/score/history", h.History)
}

func (h *ScoreHandler) Score(c *fiber.Ctx) error {
	var req dto.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "ungültiger Request-Body",
		}, err)
	}
	if strings.TrimSpace(req.JobAdText) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "job_ad_text darf nicht leer sein",
		})
	}

	result := h.uc.ScoreComplete(c.UserContext(), req.UserID, req.JobTitle, req.JobAdText)

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Stellenanzeige bewertet",
		Data:    result,
	})
}

// ScoreUpload accepts a PDF job ad, extracts its text and scores it
// like pasted text.
func (h *ScoreHandler) ScoreUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("job_ad")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "job_ad Datei ist erforderlich",
		}, err)
	}
	if file.Size > 5*1024*1024 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Datei zu groß (max 5MB)",
		})
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "nur PDF-Dateien werden unterstützt",
		})
	}

	savePath := filepath.Join("./uploads/job_ads/", util.SafeFilename(file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Datei konnte nicht gespeichert werden",
		}, err)
	}

	text, err := util.ExtractPDFText(savePath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "Text konnte nicht aus der PDF extrahiert werden",
		}, err)
	}

	userID := c.FormValue("user_id")
	jobTitle := c.FormValue("job_title")
	result := h.uc.ScoreComplete(c.UserContext(), userID, jobTitle, text)

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Stellenanzeige bewertet",
		Data:    result,
	})
}

func (h *ScoreHandler) History(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "user_id ist erforderlich",
		})
	}
	limit := c.QueryInt("limit", 10)

	scores, err := h.uc.GetScoreHistory(userID, limit)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Bewertungshistorie konnte nicht geladen werden",
		}, err)
	}

	total, err := h.uc.CountScores(userID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Bewertungshistorie konnte nicht geladen werden",
		}, err)
	}

	records := make([]dto.ScoreRecordDTO, 0, len(scores))
	for _, score := range scores {
		records = append(records, dto.ScoreRecordDTO{
			ID:             score.ID,
			JobTitle:       score.JobTitle,
			StepstoneScore: json.RawMessage(score.StepstoneScore),
			ExpertScore:    json.RawMessage(score.ExpertScore),
			GesamtScore:    score.GesamtScore,
			GesamtLevel:    score.GesamtLevel,
			CreatedAt:      score.CreatedAt,
		})
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Bewertungshistorie geladen",
		Data:    records,
		Pagination: response.NewPagination(limit, len(records), total),
	})
}
