package payment

import (
	"fmt"

	"rifapix/internal/models"
)

// UpstreamError is returned when the gateway was reachable but answered
// with a failure status. It keeps the upstream diagnostics and the exact
// charge that was sent; credentials travel in headers and never appear
// here.
type UpstreamError struct {
	Status     int
	StatusText string
	Body       models.JSON
	Sent       *models.ChargeRequest
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("pix gateway returned %d %s", e.Status, e.StatusText)
}
