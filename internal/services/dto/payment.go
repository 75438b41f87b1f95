package dto

// CreateOrderRequest asks the gateway for a new order for the given plan.
type CreateOrderRequest struct {
	PlanType string `json:"planType" validate:"required,is-subscription-plan"`
}

// OrderResponse returns the gateway order details the checkout widget needs.
type OrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	KeyID    string `json:"keyId"`
}

// VerifyPaymentRequest carries the checkout callback fields. Field names
// follow the gateway's callback payload.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// VerifyPaymentResponse confirms the upgrade after a verified payment.
type VerifyPaymentResponse struct {
	Message          string `json:"message"`
	SubscriptionPlan string `json:"subscriptionPlan"`
}
