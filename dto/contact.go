package dto

// ==================== CONTACT DTOs ====================

// ContactRequest mirrors the public contact form. Address is the sender's
// email and is also fed into the abuse tracker.
type ContactRequest struct {
	Fullname string `json:"fullname" validate:"required,min=2,max=100" example:"Jane Doe"`
	Address  string `json:"address" validate:"required,email" example:"jane@example.com"`
	Subject  string `json:"subject" validate:"required,min=2,max=200" example:"Project inquiry"`
	Message  string `json:"message" validate:"required,min=10,max=5000" example:"Hello, I would like to talk about..."`
}

func (c ContactRequest) Validate() error {
	return GetValidator().Struct(c)
}

type ContactResponse struct {
	Sent bool `json:"sent" example:"true"`
}
