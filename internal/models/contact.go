package models

import "time"

// ContactMessage is a message submitted through the public contact form.
// swagger:model ContactMessage
type ContactMessage struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ContactInput is the body of a public contact submission.
// swagger:model ContactInput
type ContactInput struct {
	// required: true
	Name string `json:"name"`
	// required: true
	Email string `json:"email"`
	Phone string `json:"phone"`
	// required: true
	Message string `json:"message"`
}

func (in ContactInput) Validate() error {
	return required(
		[2]string{"name", in.Name},
		[2]string{"email", in.Email},
		[2]string{"message", in.Message},
	)
}

// Build converts the submission into an unread message.
func (in ContactInput) Build() ContactMessage {
	return ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
}
