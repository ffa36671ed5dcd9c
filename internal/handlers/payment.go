package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"rifapix/internal/models"
	"rifapix/internal/services/payment"
	"rifapix/internal/services/pricing"
	"rifapix/internal/utils/response"
	"rifapix/internal/validation"
)

type PaymentHandler struct {
	paymentService payment.Service
	pricingService *pricing.Service
	logger         *zap.Logger
}

func NewPaymentHandler(paySvc payment.Service, priceSvc *pricing.Service, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paySvc,
		pricingService: priceSvc,
		logger:         logger,
	}
}

// CreatePixPayment proxies a raffle purchase to the PIX gateway. Validation
// failures answer immediately; the gateway is only called for a request
// that passes every rule.
func (h *PaymentHandler) CreatePixPayment(c *fiber.Ctx) error {
	var req models.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Dados obrigatórios: identifier, amount, phone, tickets")
	}

	if missing := validation.MissingFields(&req); len(missing) > 0 {
		h.logger.Warn("purchase request missing required fields",
			zap.Strings("missing", missing))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Dados obrigatórios: identifier, amount, phone, tickets",
			"missing": missing,
		})
	}

	if req.Amount <= 0 {
		return response.BadRequest(c, "Valor deve ser maior que zero")
	}

	if !validation.ValidPhone(req.Phone) {
		return response.BadRequest(c, "Telefone deve ter pelo menos 10 dígitos")
	}

	// The client owns the price math; a disagreement is logged for triage
	// but the charge still goes out with the amount as sent.
	if !h.pricingService.AmountMatches(req.Tickets, req.Amount) {
		h.logger.Warn("amount does not match ticket count",
			zap.String("identifier", req.Identifier),
			zap.Int("tickets", req.Tickets),
			zap.Float64("amount", req.Amount),
		)
	}

	result, err := h.paymentService.CreateCharge(c.Context(), &req)
	if err != nil {
		var upstream *payment.UpstreamError
		if errors.As(err, &upstream) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Erro ao processar pagamento na API externa",
				"details": fiber.Map{
					"status":       upstream.Status,
					"statusText":   upstream.StatusText,
					"error":        upstream.Body,
					"payload_sent": upstream.Sent,
				},
			})
		}
		h.logger.Error("pix charge failed", zap.Error(err))
		return response.ServerError(c, "Erro interno do servidor", err)
	}

	return c.JSON(result)
}

// Ping answers the liveness probe used to verify the proxy is reachable
// before the form is rendered.
func (h *PaymentHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "API de pagamento PIX funcionando",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "2.0",
	})
}
