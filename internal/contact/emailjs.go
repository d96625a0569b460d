package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultEndpoint is the EmailJS send API.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// RelayClient posts messages to the EmailJS API.
type RelayClient struct {
	Endpoint string
	HTTP     *http.Client
}

func NewRelayClient(endpoint string) *RelayClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &RelayClient{Endpoint: endpoint, HTTP: http.DefaultClient}
}

type sendRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	TemplateParams Message `json:"template_params"`
}

// Send issues a single POST. No timeout beyond ctx is applied.
func (c *RelayClient) Send(ctx context.Context, cfg RelayConfigured, msg Message) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(sendRequest{
		ServiceID:      cfg.ServiceID,
		TemplateID:     cfg.TemplateID,
		UserID:         cfg.PublicKey,
		TemplateParams: msg,
	}); err != nil {
		return fmt.Errorf("encode relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, buf)
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("relay post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return &RejectedError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return nil
}

var _ Sender = (*RelayClient)(nil)
