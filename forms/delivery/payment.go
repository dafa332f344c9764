package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

const paymentTimeout = 10 * time.Second

// PaymentClient registers event attendees with the payment service and
// passes the returned payment URL back to the coordinator.
type PaymentClient struct {
	endpoint string
	client   *http.Client
}

func NewPaymentClient(endpoint string) *PaymentClient {
	return &PaymentClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: paymentTimeout},
	}
}

// paymentResponse is the wire shape the payment service answers with.
type paymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PayURL  string `json:"pay_url"`
}

func (p *PaymentClient) Register(ctx context.Context, reg EventRegistration) Result {
	if p.endpoint == "" {
		log.Println("payment channel: endpoint not configured")
		return Result{Success: false, Message: "Payment configuration error"}
	}

	payload, err := json.Marshal(reg)
	if err != nil {
		log.Printf("payment channel: failed to marshal registration: %v", err)
		return Result{Success: false, Message: "Payment error"}
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload),
	)
	if err != nil {
		log.Printf("payment channel: failed to build request: %v", err)
		return Result{Success: false, Message: "Payment error"}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("payment channel: request failed: %v", err)
		return Result{Success: false, Message: "Payment error"}
	}
	defer resp.Body.Close()

	var parsed paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("payment channel: failed to decode response: %v", err)
		return Result{Success: false, Message: "Payment error"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !parsed.Success {
		log.Printf("payment channel: registration rejected: status=%d message=%q",
			resp.StatusCode, parsed.Message)
		return Result{Success: false, Message: "Payment error"}
	}

	return Result{Success: true, Message: parsed.Message, PayURL: parsed.PayURL}
}
