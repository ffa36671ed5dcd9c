package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"rifapix/internal/gateway"
	"rifapix/internal/models"
	"rifapix/internal/validation"
)

// Config holds the placeholder buyer identity sent with every charge. The
// storefront never collects name or email; the gateway requires both.
type Config struct {
	BuyerName  string
	BuyerEmail string
}

type service struct {
	gateway Gateway
	cfg     Config
	logger  *zap.Logger
	metrics MetricsCollector
}

// NewService creates a new payment service.
func NewService(gw Gateway, cfg Config, logger *zap.Logger, metrics MetricsCollector) Service {
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}
	return &service{
		gateway: gw,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// CreateCharge performs the single gateway call for a purchase. There are
// no retries and no idempotency handling: two requests with the same
// identifier are two independent charges, and the gateway owns any
// reference-key semantics.
func (s *service) CreateCharge(ctx context.Context, req *models.PurchaseRequest) (models.JSON, error) {
	charge := s.buildCharge(req)

	start := time.Now()
	resp, err := s.gateway.CreateCharge(ctx, charge)
	s.metrics.RecordGatewayDuration(time.Since(start))
	if err != nil {
		s.metrics.RecordChargeResult("transport_error")
		return nil, fmt.Errorf("pix charge failed: %w", err)
	}

	if !resp.OK() {
		s.metrics.RecordChargeResult("upstream_error")
		s.logger.Error("gateway rejected charge",
			zap.String("identifier", req.Identifier),
			zap.Int("status", resp.Status),
		)
		return nil, &UpstreamError{
			Status:     resp.Status,
			StatusText: resp.StatusText,
			Body:       resp.Body,
			Sent:       charge,
		}
	}

	s.metrics.RecordChargeResult("success")

	if gateway.HasPixFields(resp.Body) {
		return resp.Body, nil
	}

	// Older gateway versions bury the payment data under renamed keys.
	s.metrics.RecordNormalizedResponse()
	s.logger.Warn("gateway response missing pix fields, normalizing",
		zap.String("identifier", req.Identifier),
	)
	return gateway.Normalize(resp.Body, req.Identifier).Document(), nil
}

// buildCharge converts a purchase into the gateway payload: digits-only
// phone, CPF only when it survives normalization, amount rounded to two
// decimal places.
func (s *service) buildCharge(req *models.PurchaseRequest) *models.ChargeRequest {
	return &models.ChargeRequest{
		Identifier: req.Identifier,
		Amount:     math.Round(req.Amount*100) / 100,
		Client: models.ClientData{
			Name:     s.cfg.BuyerName,
			Email:    s.cfg.BuyerEmail,
			Phone:    validation.DigitsOnly(req.Phone),
			Document: validation.NormalizeDocument(req.Document),
		},
	}
}
