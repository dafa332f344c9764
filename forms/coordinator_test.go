package forms

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dermalead-api/config"
	"dermalead-api/forms/delivery"
	"dermalead-api/models"
)

type stubChannel struct {
	name    string
	result  delivery.Result
	calls   atomic.Int32
	release chan struct{} // when set, Send blocks until closed
}

func (s *stubChannel) Name() string { return s.name }

func (s *stubChannel) Send(ctx context.Context, lead delivery.ContactLead) delivery.Result {
	s.calls.Add(1)
	if s.release != nil {
		<-s.release
	}
	return s.result
}

type stubPayment struct {
	result delivery.Result
	calls  atomic.Int32
	lastRx delivery.EventRegistration
}

func (s *stubPayment) Register(ctx context.Context, reg delivery.EventRegistration) delivery.Result {
	s.calls.Add(1)
	s.lastRx = reg
	return s.result
}

type stubRecorder struct {
	mu      sync.Mutex
	entries []models.FormSubmission
}

func (s *stubRecorder) RecordFormSubmission(ctx context.Context, formType string, ok bool, lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, models.FormSubmission{
		FormType: formType, Successful: ok, Language: lang,
	})
	return nil
}

func eventConfig() config.EventConfig {
	return config.EventConfig{TicketPrice: 300, PromoCode: "PROMO2024"}
}

func validContact() models.ContactFormRequest {
	return models.ContactFormRequest{
		Name:       "Aaron Smith",
		Email:      "aaron@example.com",
		Phone:      "586 412 924",
		Profession: "cosmetologist",
		Consent:    true,
		Lang:       "en",
	}
}

func validEvent() models.EventFormRequest {
	return models.EventFormRequest{
		Name:     "Aaron Smith",
		Email:    "aaron@example.com",
		Phone:    "586 412 924",
		IDNumber: "123-456-789",
		Quantity: 1,
		Consent:  true,
		Lang:     "en",
	}
}

func TestEither(t *testing.T) {
	ok := delivery.Result{Success: true, Message: "ok"}
	fail := delivery.Result{Success: false, Message: "down"}

	assert.True(t, Either(ok, fail).Success)
	assert.True(t, Either(fail, ok).Success)
	assert.True(t, Either(ok, ok).Success)
	assert.False(t, Either(fail, fail).Success)
}

func TestSubmitContactEitherChannelSucceeds(t *testing.T) {
	email := &stubChannel{name: "email", result: delivery.Result{Success: false, Message: "smtp down"}}
	crm := &stubChannel{name: "crm", result: delivery.Result{Success: true}}
	rec := &stubRecorder{}
	c := NewCoordinator(email, crm, &stubPayment{}, rec, eventConfig())

	resp, err := c.SubmitContact(context.Background(), validContact())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "/en/form/success", resp.RedirectTo)
	assert.Equal(t, int32(1), email.calls.Load())
	assert.Equal(t, int32(1), crm.calls.Load())

	require.Len(t, rec.entries, 1)
	assert.Equal(t, models.FormTypeContact, rec.entries[0].FormType)
	assert.True(t, rec.entries[0].Successful)
}

func TestSubmitContactBothChannelsFail(t *testing.T) {
	email := &stubChannel{name: "email", result: delivery.Result{Success: false, Message: "smtp down"}}
	crm := &stubChannel{name: "crm", result: delivery.Result{Success: false, Message: "crm down"}}
	rec := &stubRecorder{}
	c := NewCoordinator(email, crm, &stubPayment{}, rec, eventConfig())

	_, err := c.SubmitContact(context.Background(), validContact())
	var dErr *DeliveryError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "Something went wrong, please try again", dErr.Message)

	require.Len(t, rec.entries, 1)
	assert.False(t, rec.entries[0].Successful)
}

func TestSubmitContactValidationGate(t *testing.T) {
	email := &stubChannel{name: "email", result: delivery.Result{Success: true}}
	crm := &stubChannel{name: "crm", result: delivery.Result{Success: true}}
	c := NewCoordinator(email, crm, &stubPayment{}, nil, eventConfig())

	cases := []func(*models.ContactFormRequest){
		func(r *models.ContactFormRequest) { r.Name = "ab" },
		func(r *models.ContactFormRequest) { r.Email = "not-an-email" },
		func(r *models.ContactFormRequest) { r.Phone = "12345" },
		func(r *models.ContactFormRequest) { r.Profession = "" },
		func(r *models.ContactFormRequest) { r.Consent = false },
	}
	for _, mutate := range cases {
		req := validContact()
		mutate(&req)
		_, err := c.SubmitContact(context.Background(), req)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	}

	// the gate fires before any delivery call
	assert.Equal(t, int32(0), email.calls.Load())
	assert.Equal(t, int32(0), crm.calls.Load())
}

func TestSubmitContactNotReentrant(t *testing.T) {
	gate := make(chan struct{})
	email := &stubChannel{name: "email", result: delivery.Result{Success: true}, release: gate}
	crm := &stubChannel{name: "crm", result: delivery.Result{Success: true}, release: gate}
	c := NewCoordinator(email, crm, &stubPayment{}, nil, eventConfig())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := c.SubmitContact(context.Background(), validContact())
		assert.NoError(t, err)
	}()

	// wait for the first submission to reach the channels
	for email.calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	_, err := c.SubmitContact(context.Background(), validContact())
	assert.ErrorIs(t, err, ErrInFlight)

	close(gate)
	<-done

	// the duplicate produced no extra channel calls
	assert.Equal(t, int32(1), email.calls.Load())
	assert.Equal(t, int32(1), crm.calls.Load())

	// once settled, the same submitter may submit again
	_, err = c.SubmitContact(context.Background(), validContact())
	assert.NoError(t, err)
}

func TestSubmitEventWithPaymentURL(t *testing.T) {
	payment := &stubPayment{result: delivery.Result{Success: true, PayURL: "https://pay.example.com/s/42"}}
	rec := &stubRecorder{}
	c := NewCoordinator(&stubChannel{}, &stubChannel{}, payment, rec, eventConfig())

	req := validEvent()
	req.Quantity = 3
	req.PromoCode = "PROMO2024"

	resp, err := c.SubmitEvent(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "https://pay.example.com/s/42", resp.PayURL)
	assert.Equal(t, "Redirecting to secure payment...", resp.Message)
	assert.Empty(t, resp.RedirectTo)

	// the forwarded payload carries the server-computed price
	assert.Equal(t, "810", payment.lastRx.TotalPrice)
	assert.True(t, payment.lastRx.Discount)
	assert.Equal(t, 3, payment.lastRx.Quantity)
	assert.Equal(t, "123456789", payment.lastRx.IDNumber)
	assert.Equal(t, "586412924", payment.lastRx.Phone)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, models.FormTypeEvent, rec.entries[0].FormType)
}

func TestSubmitEventWithoutPaymentURL(t *testing.T) {
	payment := &stubPayment{result: delivery.Result{Success: true}}
	c := NewCoordinator(&stubChannel{}, &stubChannel{}, payment, nil, eventConfig())

	resp, err := c.SubmitEvent(context.Background(), validEvent())
	require.NoError(t, err)
	assert.Equal(t, "/en/event/form/success", resp.RedirectTo)
	assert.Empty(t, resp.PayURL)
}

func TestSubmitEventWrongPromo(t *testing.T) {
	payment := &stubPayment{result: delivery.Result{Success: true}}
	c := NewCoordinator(&stubChannel{}, &stubChannel{}, payment, nil, eventConfig())

	req := validEvent()
	req.Quantity = 3
	req.PromoCode = "promo2024" // wrong case

	_, err := c.SubmitEvent(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "900", payment.lastRx.TotalPrice)
	assert.False(t, payment.lastRx.Discount)
}

func TestSubmitEventQuantityClamped(t *testing.T) {
	payment := &stubPayment{result: delivery.Result{Success: true}}
	c := NewCoordinator(&stubChannel{}, &stubChannel{}, payment, nil, eventConfig())

	req := validEvent()
	req.Quantity = 0
	_, err := c.SubmitEvent(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, payment.lastRx.Quantity)
	assert.Equal(t, "300", payment.lastRx.TotalPrice)
}

func TestSubmitEventFailure(t *testing.T) {
	payment := &stubPayment{result: delivery.Result{Success: false, Message: "gateway down"}}
	rec := &stubRecorder{}
	c := NewCoordinator(&stubChannel{}, &stubChannel{}, payment, rec, eventConfig())

	_, err := c.SubmitEvent(context.Background(), validEvent())
	var dErr *DeliveryError
	require.ErrorAs(t, err, &dErr)

	require.Len(t, rec.entries, 1)
	assert.False(t, rec.entries[0].Successful)
}

func TestSubmitEventValidationGate(t *testing.T) {
	payment := &stubPayment{result: delivery.Result{Success: true}}
	c := NewCoordinator(&stubChannel{}, &stubChannel{}, payment, nil, eventConfig())

	req := validEvent()
	req.IDNumber = "1234"
	_, err := c.SubmitEvent(context.Background(), req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, int32(0), payment.calls.Load())
}
