package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client exposes the outbound alert operation used by the application.
type Client interface {
	PostAlert(ctx context.Context, alert Alert) error
}

// Alert is the JSON payload posted to the configured webhook when a
// recomputed budget shows a forage deficit.
type Alert struct {
	TenantID     string    `json:"tenant_id"`
	Message      string    `json:"message"`
	DeficitLb    float64   `json:"deficit_lb"`
	CoverageDays float64   `json:"coverage_days"`
	HorizonDays  int       `json:"horizon_days"`
	SentAt       time.Time `json:"sent_at"`
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client posting to the provided URL.
func NewClient(url string) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		url:        url,
	}
}

// PostAlert delivers the alert payload. Delivery failures are returned to the
// caller; they never affect planning state.
func (c *APIClient) PostAlert(ctx context.Context, alert Alert) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(alert).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post deficit alert: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("deficit alert rejected: status %d", resp.StatusCode())
	}
	return nil
}
