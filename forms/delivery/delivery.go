// Package delivery contains the outbound channel adapters that receive
// lead and registration payloads: email, CRM and the payment service.
// Channels never return raw transport errors to callers; failures are
// logged and reported as an unsuccessful Result so the submission
// coordinator can aggregate outcomes.
package delivery

import "context"

// Result is the outcome a channel reports back.
type Result struct {
	Success bool
	Message string
	// MessageID is set by the email channel on success.
	MessageID string
	// PayURL is set by the payment channel when the registration
	// requires an external payment step.
	PayURL string
}

// ContactLead is the payload shape shared by the email and CRM channels.
type ContactLead struct {
	Name       string
	Email      string
	Phone      string
	Profession string
}

// EventRegistration is the payload sent to the payment channel.
type EventRegistration struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	IDNumber   string `json:"idNumber"`
	TotalPrice string `json:"totalPrice"`
	Discount   bool   `json:"discount"`
	Quantity   int    `json:"quantity"`
	Lang       string `json:"lang"`
}

// ContactChannel delivers a contact lead to one downstream system.
type ContactChannel interface {
	Name() string
	Send(ctx context.Context, lead ContactLead) Result
}

// PaymentChannel registers an event attendee and reports the payment URL.
type PaymentChannel interface {
	Register(ctx context.Context, reg EventRegistration) Result
}
