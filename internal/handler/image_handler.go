package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dreampix/dreampix-backend/internal/models"
	"github.com/dreampix/dreampix-backend/internal/service"
	"github.com/dreampix/dreampix-backend/pkg/utils"
)

type ImageHandler struct {
	imageService *service.ImageService
	validator    *utils.Validator
}

func NewImageHandler(imageService *service.ImageService, validator *utils.Validator) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		validator:    validator,
	}
}

func (h *ImageHandler) GenerateImage(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.GenerateImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing details"))
	}

	result, err := h.imageService.Generate(c.UserContext(), userID, req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCredits):
			return c.Status(fiber.StatusPaymentRequired).JSON(models.ErrorResponse("No Credit Balance"))
		case errors.Is(err, service.ErrMissingDetails):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("missing details"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Image generation failed"))
		}
	}

	return c.JSON(models.SuccessResponse(result, ""))
}
