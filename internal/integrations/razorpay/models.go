package razorpay

// Payment модель платежа из Razorpay API
type Payment struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // в минимальных единицах валюты (пайсы)
	Currency string `json:"currency"`
	Status   string `json:"status"` // created, authorized, captured, refunded, failed
	Captured bool   `json:"captured"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}

// ErrorResponse модель ошибки от Razorpay API
type ErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}
