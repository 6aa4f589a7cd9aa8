package request

type ContactRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Email        string  `json:"email" validate:"required,email,max=150"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Subject      string  `json:"subject" validate:"required,min=2,max=200"`
	Message      string  `json:"message" validate:"required,min=10,max=5000"`
	CaptchaToken string  `json:"captcha_token,omitempty"`
}

type UpdateContactRequest struct {
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=unread read replied spam"`
	AdminNotes *string `json:"admin_notes,omitempty" validate:"omitempty,max=2000"`
}

type SubscribeRequest struct {
	Email string  `json:"email" validate:"required,email,max=150"`
	Name  *string `json:"name,omitempty" validate:"omitempty,max=100"`
}
