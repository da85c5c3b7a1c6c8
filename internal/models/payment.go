package models

type StartPurchaseRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

type VerifyRazorpayRequest struct {
	RazorpayOrderID string `json:"razorpay_order_id" validate:"required"`
}

type VerifyStripeRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	Success       bool   `json:"success"`
}

type CreditsResponse struct {
	Credits  int    `json:"credits"`
	FullName string `json:"full_name"`
}
