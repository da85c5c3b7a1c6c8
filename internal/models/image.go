package models

type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=1000"`
}

type GenerateImageResponse struct {
	ResultImage   string `json:"result_image"`
	ImageURL      string `json:"image_url,omitempty"`
	CreditBalance int    `json:"credit_balance"`
}
