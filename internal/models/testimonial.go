package models

import "time"

// DefaultRating is applied when a testimonial omits its rating.
const DefaultRating = 5

// Testimonial is a client quote.
// swagger:model Testimonial
type Testimonial struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Position  string    `json:"position" db:"position"`
	Content   string    `json:"content" db:"content"`
	Image     string    `json:"image" db:"image"`
	Rating    int       `json:"rating" db:"rating"`
	OrderNum  int       `json:"order_num" db:"order_num"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TestimonialInput is the body of a testimonial create or full replace.
// swagger:model TestimonialInput
type TestimonialInput struct {
	// required: true
	Name     string `json:"name"`
	Position string `json:"position"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Rating   *int   `json:"rating"`
	OrderNum *int   `json:"order_num"`
	IsActive *bool  `json:"is_active"`
}

func (in TestimonialInput) Validate() error {
	return required([2]string{"name", in.Name})
}

// Build applies defaults to omitted fields.
func (in TestimonialInput) Build() Testimonial {
	return Testimonial{
		Name:     in.Name,
		Position: in.Position,
		Content:  in.Content,
		Image:    in.Image,
		Rating:   intOr(in.Rating, DefaultRating),
		OrderNum: intOr(in.OrderNum, 0),
		IsActive: boolOr(in.IsActive, true),
	}
}
