// Package forms implements the lead-submission pipeline: field
// validation, ticket pricing and the coordinator that delivers
// submissions to the downstream channels.
package forms

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"dermalead-api/config"
	"dermalead-api/forms/delivery"
	"dermalead-api/i18n"
	"dermalead-api/models"
	"dermalead-api/validation"
)

// Per-call budget for an outbound delivery; a timed-out call counts as
// a failure when aggregating channel results.
const deliveryTimeout = 10 * time.Second

// ErrInFlight is returned when a submission for the same submitter is
// still being processed; no network call is made for the duplicate.
var ErrInFlight = errors.New("submission already in flight")

// ValidationError carries the localized message for a failed
// aggregate-validity check.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DeliveryError carries the generic localized message shown when every
// attempted channel failed. The underlying causes are only logged.
type DeliveryError struct {
	Message string
}

func (e *DeliveryError) Error() string { return e.Message }

// SubmissionRecorder stores form submission outcomes for analytics.
type SubmissionRecorder interface {
	RecordFormSubmission(ctx context.Context, formType string, successful bool, lang string) error
}

// Either combines two independent channel results with OR semantics:
// the submission succeeds if at least one channel accepted it. Used by
// the contact form so a single downstream outage never blocks a lead.
func Either(a, b delivery.Result) delivery.Result {
	if a.Success {
		return a
	}
	if b.Success {
		return b
	}
	return delivery.Result{
		Success: false,
		Message: fmt.Sprintf("all channels failed: %s; %s", a.Message, b.Message),
	}
}

// Coordinator orchestrates form submissions: it re-validates fields,
// dispatches to the delivery channels, records the outcome and shapes
// the response the client acts on. Submissions are not re-entrant: a
// second submit for the same address while one is in flight is ignored.
type Coordinator struct {
	email    delivery.ContactChannel
	crm      delivery.ContactChannel
	payment  delivery.PaymentChannel
	recorder SubmissionRecorder

	unitPrice float64
	promoCode string
	timeout   time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewCoordinator(
	email delivery.ContactChannel,
	crm delivery.ContactChannel,
	payment delivery.PaymentChannel,
	recorder SubmissionRecorder,
	event config.EventConfig,
) *Coordinator {
	return &Coordinator{
		email:     email,
		crm:       crm,
		payment:   payment,
		recorder:  recorder,
		unitPrice: event.TicketPrice,
		promoCode: event.PromoCode,
		timeout:   deliveryTimeout,
		inFlight:  map[string]struct{}{},
	}
}

// CheckPromo reports whether the entered code matches the configured
// one. Comparison is case-sensitive and an unset code never matches.
func (c *Coordinator) CheckPromo(code string) bool {
	return c.promoCode != "" && code == c.promoCode
}

// SubmitContact validates the contact form and delivers it to the email
// and CRM channels concurrently. The submission succeeds if either
// channel succeeds.
func (c *Coordinator) SubmitContact(
	ctx context.Context,
	req models.ContactFormRequest,
) (models.SubmitResponse, error) {
	lang := i18n.NormalizeLocale(req.Lang)
	t := i18n.Lookup(lang)

	phone := validation.FilterPhone(req.Phone)
	if !req.Consent ||
		validation.ValidateName(req.Name, t) != "" ||
		validation.ValidateEmail(req.Email, t) != "" ||
		validation.ValidatePhone(phone, t) != "" ||
		validation.ValidateProfession(req.Profession, t) != "" {
		return models.SubmitResponse{}, &ValidationError{Message: t("forms.validationError")}
	}

	release, err := c.acquire(req.Email)
	if err != nil {
		return models.SubmitResponse{}, err
	}
	defer release()

	lead := delivery.ContactLead{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      phone,
		Profession: strings.TrimSpace(req.Profession),
	}

	// both channels run concurrently with no ordering guarantee
	var emailRes, crmRes delivery.Result
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		emailRes = c.dispatch(ctx, c.email, lead)
	}()
	go func() {
		defer wg.Done()
		crmRes = c.dispatch(ctx, c.crm, lead)
	}()
	wg.Wait()

	combined := Either(emailRes, crmRes)
	c.record(ctx, models.FormTypeContact, combined.Success, lang)

	if !combined.Success {
		log.Printf("contact submission failed: %s", combined.Message)
		return models.SubmitResponse{}, &DeliveryError{Message: t("forms.error")}
	}

	return models.SubmitResponse{
		Success:    true,
		RedirectTo: fmt.Sprintf("/%s/form/success", lang),
	}, nil
}

// SubmitEvent validates the event ticket form, recomputes the total
// price server-side and registers the attendee with the payment
// channel. When the channel returns a payment URL the client is told to
// briefly show the confirmation message and then navigate there;
// otherwise it is sent to the internal success page.
func (c *Coordinator) SubmitEvent(
	ctx context.Context,
	req models.EventFormRequest,
) (models.SubmitResponse, error) {
	lang := i18n.NormalizeLocale(req.Lang)
	t := i18n.Lookup(lang)

	phone := validation.FilterPhone(req.Phone)
	idNumber := validation.FilterDigits(req.IDNumber)
	if !req.Consent ||
		validation.ValidateName(req.Name, t) != "" ||
		validation.ValidateEmail(req.Email, t) != "" ||
		validation.ValidatePhone(phone, t) != "" ||
		validation.ValidateID(idNumber, t) != "" {
		return models.SubmitResponse{}, &ValidationError{Message: t("forms.validationError")}
	}

	release, err := c.acquire(req.Email)
	if err != nil {
		return models.SubmitResponse{}, err
	}
	defer release()

	// price is always derived from the configured unit price and the
	// selection the client sent, never taken from the payload
	sel := NewTicketSelection()
	sel.SetQuantity(req.Quantity)
	sel.ApplyPromo(req.PromoCode, c.promoCode)
	total := sel.Total(c.unitPrice)

	reg := delivery.EventRegistration{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      phone,
		IDNumber:   idNumber,
		TotalPrice: FormatTotal(total),
		Discount:   sel.Discounted(),
		Quantity:   sel.Quantity(),
		Lang:       lang,
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	res := c.payment.Register(callCtx, reg)

	c.record(ctx, models.FormTypeEvent, res.Success, lang)

	if !res.Success {
		log.Printf("event registration failed: %s", res.Message)
		return models.SubmitResponse{}, &DeliveryError{Message: t("forms.error")}
	}

	if res.PayURL != "" {
		return models.SubmitResponse{
			Success: true,
			Message: t("forms.processingPayment"),
			PayURL:  res.PayURL,
		}, nil
	}
	return models.SubmitResponse{
		Success:    true,
		RedirectTo: fmt.Sprintf("/%s/event/form/success", lang),
	}, nil
}

// dispatch runs one channel call under the per-call timeout.
func (c *Coordinator) dispatch(
	ctx context.Context,
	ch delivery.ContactChannel,
	lead delivery.ContactLead,
) delivery.Result {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return ch.Send(callCtx, lead)
}

// acquire registers the submitter in the in-flight set. The returned
// release must be called once the submission settles.
func (c *Coordinator) acquire(email string) (func(), error) {
	key := strings.ToLower(strings.TrimSpace(email))
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[key]; busy {
		return nil, ErrInFlight
	}
	c.inFlight[key] = struct{}{}
	return func() {
		c.mu.Lock()
		delete(c.inFlight, key)
		c.mu.Unlock()
	}, nil
}

// record stores the submission outcome; analytics must never fail a
// submission, so errors are only logged.
func (c *Coordinator) record(ctx context.Context, formType string, ok bool, lang string) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordFormSubmission(ctx, formType, ok, lang); err != nil {
		log.Printf("failed to record %s submission: %v", formType, err)
	}
}
