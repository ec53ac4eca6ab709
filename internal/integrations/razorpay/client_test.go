package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	client := NewClient("http://localhost", "key", "secret", time.Second, nopLogger{})

	valid := sign("secret", "order_abc", "pay_xyz")

	assert.NoError(t, client.VerifySignature("order_abc", "pay_xyz", valid))

	err := client.VerifySignature("order_abc", "pay_xyz", "deadbeef")
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	// Подпись привязана к паре order/payment
	err = client.VerifySignature("order_other", "pay_xyz", valid)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestGetPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)

		switch r.URL.Path {
		case "/v1/payments/pay_xyz":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": "pay_xyz",
				"order_id": "order_abc",
				"amount": 570000,
				"currency": "INR",
				"status": "captured",
				"captured": true
			}`))
		case "/v1/payments/pay_missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", "secret", time.Second, nopLogger{})

	t.Run("found", func(t *testing.T) {
		payment, err := client.GetPayment(context.Background(), "pay_xyz")

		require.NoError(t, err)
		assert.Equal(t, "pay_xyz", payment.ID)
		assert.Equal(t, "order_abc", payment.OrderID)
		assert.Equal(t, int64(570000), payment.Amount)
		assert.True(t, payment.Captured)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := client.GetPayment(context.Background(), "pay_missing")
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("unexpected status", func(t *testing.T) {
		_, err := client.GetPayment(context.Background(), "pay_boom")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestVerifyPayment(t *testing.T) {
	captured := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if captured {
			w.Write([]byte(`{"id": "pay_xyz", "order_id": "order_abc", "amount": 570000, "currency": "INR", "status": "captured", "captured": true}`))
			return
		}
		w.Write([]byte(`{"id": "pay_xyz", "order_id": "order_abc", "amount": 570000, "currency": "INR", "status": "authorized", "captured": false}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", "secret", time.Second, nopLogger{})
	signature := sign("secret", "order_abc", "pay_xyz")

	t.Run("captured payment verified", func(t *testing.T) {
		payment, err := client.VerifyPayment(context.Background(), "order_abc", "pay_xyz", signature)

		require.NoError(t, err)
		assert.Equal(t, int64(570000), payment.Amount)
	})

	t.Run("bad signature short-circuits", func(t *testing.T) {
		_, err := client.VerifyPayment(context.Background(), "order_abc", "pay_xyz", "bad")
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("uncaptured payment rejected", func(t *testing.T) {
		captured = false
		defer func() { captured = true }()

		_, err := client.VerifyPayment(context.Background(), "order_abc", "pay_xyz", signature)
		assert.ErrorIs(t, err, ErrPaymentNotCaptured)
	})
}
