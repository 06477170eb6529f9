package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobtimizer/jobtimizer/internal/dto"
	"github.com/jobtimizer/jobtimizer/internal/middleware"
	"github.com/jobtimizer/jobtimizer/internal/usecase"
	"github.com/jobtimizer/jobtimizer/internal/util"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/users/register", middleware.RateLimiter(5, 1*time.Minute), h.Register)
	app.Post("/users/login", middleware.RateLimiter(10, 1*time.Minute), h.Login)
	app.Get("/users/:id", h.GetUser)
	app.Put("/users/:id/preferences", h.UpdatePreferences)
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "ungültiger Request-Body",
		}, err)
	}

	user, err := h.uc.Register(req)
	if err != nil {
		code := fiber.StatusInternalServerError
		if errors.Is(err, usecase.ErrUserExists) {
			code = fiber.StatusConflict
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    code,
			Message: err.Error(),
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Benutzer registriert",
		Data:    user,
	})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "ungültiger Request-Body",
		}, err)
	}

	user, err := h.uc.Login(req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "ungültige Zugangsdaten",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Anmeldung fehlgeschlagen",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Anmeldung erfolgreich",
		Data:    user,
	})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.uc.GetUser(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Benutzer nicht gefunden",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Benutzer geladen",
		Data:    user,
	})
}

func (h *UserHandler) UpdatePreferences(c *fiber.Ctx) error {
	var preferences dto.Preferences
	if err := c.BodyParser(&preferences); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "ungültiger Request-Body",
		}, err)
	}

	if err := h.uc.UpdatePreferences(c.Params("id"), preferences); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Präferenzen konnten nicht gespeichert werden",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Präferenzen gespeichert",
	})
}
