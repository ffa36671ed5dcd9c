package gateway

import (
	"time"

	"rifapix/internal/models"
)

// Config holds the gateway connection settings. Keys come from deployment
// configuration and must never reach a response body or a log line.
type Config struct {
	BaseURL   string
	PublicKey string
	SecretKey string
	UserAgent string
	Timeout   time.Duration
}

// Response is the parsed upstream reply. A non-2xx status is data here,
// not an error; the caller decides how to surface it.
type Response struct {
	Status     int
	StatusText string
	Body       models.JSON
}

// OK reports whether the gateway answered with a success status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}
