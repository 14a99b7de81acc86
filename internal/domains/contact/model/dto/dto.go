package dto

type ContactRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=50,humanname"`
	LastName  string `json:"last_name"  validate:"required,min=2,max=50,humanname"`
	Email     string `json:"email"      validate:"required,email,max=100"`
	Phone     string `json:"phone"      validate:"omitempty,frphone"`

	Subject string `json:"subject" validate:"required,min=3,max=100"`
	Message string `json:"message" validate:"required,min=10,max=1000"`

	CaptchaToken string `json:"captcha_token" validate:"required"`
}
