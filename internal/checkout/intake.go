package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tekbir/internal/domain"
)

// IntakeClient forwards completed orders to the order-intake endpoint.
type IntakeClient struct {
	BaseURL string
	Client  *http.Client
}

func NewIntakeClient(baseURL string, timeout time.Duration) *IntakeClient {
	return &IntakeClient{BaseURL: baseURL, Client: &http.Client{Timeout: timeout}}
}

// Submit posts the order. Any transport error or non-2xx response is a
// submission failure; the caller keeps cart and form untouched so the user
// can retry.
func (ic *IntakeClient) Submit(ctx context.Context, o domain.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ic.BaseURL+"/order", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ic.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("order intake returned %d", resp.StatusCode)
	}
	return nil
}
