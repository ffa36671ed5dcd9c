package payment

import (
	"context"
	"time"

	"rifapix/internal/gateway"
	"rifapix/internal/models"
)

// Service orchestrates a raffle purchase: build the charge, call the
// gateway once, shape the answer.
type Service interface {
	CreateCharge(ctx context.Context, req *models.PurchaseRequest) (models.JSON, error)
}

// Gateway issues PIX charges against the external payment provider.
type Gateway interface {
	CreateCharge(ctx context.Context, charge *models.ChargeRequest) (*gateway.Response, error)
}

// MetricsCollector observes charge outcomes and gateway latency.
type MetricsCollector interface {
	RecordChargeResult(outcome string)
	RecordGatewayDuration(d time.Duration)
	RecordNormalizedResponse()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordChargeResult(string)           {}
func (NoopMetricsCollector) RecordGatewayDuration(time.Duration) {}
func (NoopMetricsCollector) RecordNormalizedResponse()           {}
