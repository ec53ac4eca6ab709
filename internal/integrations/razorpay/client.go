package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного шлюза Razorpay.
// Сервис не создает платежи сам: оплата проходит на стороне клиента,
// сюда приходит результат для верификации подписи и статуса.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Razorpay
func NewClient(baseURL, keyID, keySecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// VerifySignature проверяет подпись платежа: HMAC-SHA256 от "orderID|paymentID"
// на секретном ключе. Сравнение за константное время.
func (c *Client) VerifySignature(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		c.log.Warn("VerifySignature: signature mismatch for payment_id=%s", paymentID)
		return ErrSignatureMismatch
	}

	return nil
}

// GetPayment получает платеж по идентификатору
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", c.baseURL, paymentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound, http.StatusBadRequest:
		return nil, ErrPaymentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &payment, nil
}

// VerifyPayment проверяет подпись и убеждается, что платеж захвачен шлюзом.
// Возвращает платеж для сверки суммы на стороне вызывающего.
func (c *Client) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*Payment, error) {
	if err := c.VerifySignature(orderID, paymentID, signature); err != nil {
		return nil, err
	}

	payment, err := c.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if !payment.Captured {
		c.log.Warn("VerifyPayment: payment_id=%s is not captured, status=%s", paymentID, payment.Status)
		return nil, fmt.Errorf("%w: status=%s", ErrPaymentNotCaptured, payment.Status)
	}

	c.log.Info("VerifyPayment: payment_id=%s verified, amount=%d %s", payment.ID, payment.Amount, payment.Currency)
	return payment, nil
}
