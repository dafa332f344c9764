package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registration() EventRegistration {
	return EventRegistration{
		Name: "Aaron Smith", Email: "aaron@example.com", Phone: "586412924",
		IDNumber: "123456789", TotalPrice: "810", Discount: true, Quantity: 3, Lang: "en",
	}
}

func TestPaymentRegisterWithPayURL(t *testing.T) {
	var received EventRegistration
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"pay_url": "https://pay.example.com/s/42",
		})
	}))
	defer srv.Close()

	res := NewPaymentClient(srv.URL).Register(context.Background(), registration())

	assert.True(t, res.Success)
	assert.Equal(t, "https://pay.example.com/s/42", res.PayURL)
	assert.Equal(t, "810", received.TotalPrice)
	assert.Equal(t, 3, received.Quantity)
	assert.True(t, received.Discount)
	assert.Equal(t, "en", received.Lang)
}

func TestPaymentRegisterWithoutPayURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	res := NewPaymentClient(srv.URL).Register(context.Background(), registration())
	assert.True(t, res.Success)
	assert.Empty(t, res.PayURL)
}

func TestPaymentRegisterRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "sold out"})
	}))
	defer srv.Close()

	res := NewPaymentClient(srv.URL).Register(context.Background(), registration())
	assert.False(t, res.Success)
}

func TestPaymentRegisterNotConfigured(t *testing.T) {
	res := NewPaymentClient("").Register(context.Background(), registration())
	assert.False(t, res.Success)
}

func TestPaymentRegisterBadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	res := NewPaymentClient(srv.URL).Register(context.Background(), registration())
	assert.False(t, res.Success)
}
