// Package gateway talks to the external PIX payment provider and reconciles
// the response shapes it has shipped over time.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rifapix/internal/models"
)

const (
	receivePath      = "/api/v1/gateway/pix/receive"
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "RifaPix/1.0"
)

// Client issues PIX charges over HTTPS with the credential headers the
// gateway expects.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a gateway client with a bounded request timeout.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// CreateCharge posts a charge and parses whatever comes back. The gateway
// has answered with JSON, HTML error pages and empty bodies across
// versions, so every branch ends in a usable document. The returned error
// covers transport failures only; upstream failure statuses land in
// Response.
func (c *Client) CreateCharge(ctx context.Context, charge *models.ChargeRequest) (*Response, error) {
	payload, err := json.Marshal(charge)
	if err != nil {
		return nil, fmt.Errorf("encoding charge: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+receivePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-public-key", c.cfg.PublicKey)
	req.Header.Set("x-secret-key", c.cfg.SecretKey)
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling pix gateway: %w", err)
	}
	defer res.Body.Close()

	c.logger.Info("gateway responded",
		zap.String("request_id", requestID),
		zap.String("identifier", charge.Identifier),
		zap.Int("status", res.StatusCode),
	)

	return &Response{
		Status:     res.StatusCode,
		StatusText: http.StatusText(res.StatusCode),
		Body:       parseBody(res),
	}, nil
}

// parseBody never fails: a body the gateway mangled becomes an error
// document instead of aborting the request.
func parseBody(res *http.Response) models.JSON {
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return models.JSON{"error": "Erro ao processar resposta da API"}
	}

	if strings.Contains(res.Header.Get("Content-Type"), "application/json") {
		var doc models.JSON
		if err := json.Unmarshal(data, &doc); err != nil {
			return models.JSON{"error": "Erro ao processar resposta da API"}
		}
		return doc
	}

	return models.JSON{"rawResponse": string(data)}
}
