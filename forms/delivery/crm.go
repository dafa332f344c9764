package delivery

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dermalead-api/config"
)

// The CRM is slow on bad days; cap every call.
const crmTimeout = 10 * time.Second

// CRMChannel posts leads to the CRM's external client-creation API as a
// form-encoded request. Account credentials travel as query parameters
// on the templated URL.
type CRMChannel struct {
	cfg    config.CRMConfig
	client *http.Client
	// overridden in tests
	endpoint string
}

func NewCRMChannel(cfg config.CRMConfig) *CRMChannel {
	return &CRMChannel{
		cfg:      cfg,
		client:   &http.Client{Timeout: crmTimeout},
		endpoint: cfg.AddURL(),
	}
}

func (c *CRMChannel) Name() string { return "crm" }

func (c *CRMChannel) Send(ctx context.Context, lead ContactLead) Result {
	if !c.cfg.Configured() {
		log.Println("crm channel: credentials not properly configured")
		return Result{Success: false, Message: "CRM configuration error"}
	}

	form := url.Values{
		"x_name":     {lead.Name},
		"x_email":    {lead.Email},
		"x_phone":    {lead.Phone},
		"x_comments": {lead.Profession},
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()),
	)
	if err != nil {
		log.Printf("crm channel: failed to build request: %v", err)
		return Result{Success: false, Message: "CRM error"}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("crm channel: request failed: %v", err)
		return Result{Success: false, Message: "CRM error"}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("crm channel: unexpected status %d: %s", resp.StatusCode, body)
		return Result{Success: false, Message: "CRM error"}
	}

	return Result{Success: true, Message: "Data successfully sent to CRM"}
}
