package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dreampix/dreampix-backend/internal/catalog"
	"github.com/dreampix/dreampix-backend/internal/models"
	"github.com/dreampix/dreampix-backend/internal/service"
	"github.com/dreampix/dreampix-backend/pkg/payment"
	"github.com/dreampix/dreampix-backend/pkg/utils"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	validator      *utils.Validator
}

func NewPaymentHandler(paymentService *service.PaymentService, validator *utils.Validator) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *PaymentHandler) GetPlans(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(h.paymentService.GetPlans(), ""))
}

func (h *PaymentHandler) GetPurchaseHistory(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	purchases, err := h.paymentService.GetUserPurchaseHistory(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(purchases, ""))
}

func (h *PaymentHandler) PayRazorpay(c *fiber.Ctx) error {
	return h.startPurchase(c, "razorpay")
}

func (h *PaymentHandler) PayStripe(c *fiber.Ctx) error {
	return h.startPurchase(c, "stripe")
}

func (h *PaymentHandler) startPurchase(c *fiber.Ctx, provider string) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.StartPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing details"))
	}

	result, err := h.paymentService.StartPurchase(c.UserContext(), userID, req.PlanID, provider, c.Get("Origin"))
	if err != nil {
		return h.purchaseError(c, err)
	}

	return c.JSON(models.SuccessResponse(result, ""))
}

func (h *PaymentHandler) VerifyRazorpay(c *fiber.Ctx) error {
	var req models.VerifyRazorpayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing details"))
	}

	result, err := h.paymentService.ConfirmPurchase(c.UserContext(), "razorpay", payment.ConfirmRef{
		OrderID: req.RazorpayOrderID,
	})
	if err != nil {
		return h.purchaseError(c, err)
	}

	return h.confirmResponse(c, result)
}

func (h *PaymentHandler) VerifyStripe(c *fiber.Ctx) error {
	var req models.VerifyStripeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing details"))
	}

	result, err := h.paymentService.ConfirmPurchase(c.UserContext(), "stripe", payment.ConfirmRef{
		TransactionID: req.TransactionID,
		Success:       req.Success,
	})
	if err != nil {
		return h.purchaseError(c, err)
	}

	return h.confirmResponse(c, result)
}

func (h *PaymentHandler) confirmResponse(c *fiber.Ctx, result *service.ConfirmResult) error {
	switch result.Outcome {
	case service.OutcomeCredited:
		return c.JSON(models.SuccessResponse(fiber.Map{
			"transaction_id": result.TransactionID,
			"credits":        result.Credits,
		}, "Credits Added"))
	case service.OutcomeAlreadySettled:
		return c.JSON(models.ErrorResponse("Payment Already Verified"))
	case service.OutcomeNotFound:
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Transaction not found"))
	default:
		return c.JSON(models.ErrorResponse("Payment Failed"))
	}
}

func (h *PaymentHandler) purchaseError(c *fiber.Ctx, err error) error {
	var gatewayErr *payment.GatewayError

	switch {
	case errors.Is(err, catalog.ErrPlanNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("plan not found"))
	case errors.Is(err, service.ErrMissingDetails):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("missing details"))
	case errors.Is(err, payment.ErrNotConfigured):
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse("Payment provider is not configured"))
	case errors.As(err, &gatewayErr):
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse("Payment provider error, please try again"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Something went wrong"))
	}
}
