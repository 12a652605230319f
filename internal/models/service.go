package models

import "time"

// Service is a company service card shown on the landing page.
// swagger:model Service
type Service struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`   // lucide icon name, e.g. "Wheat"
	Color       string    `json:"color" db:"color"` // tailwind gradient classes
	OrderNum    int       `json:"order_num" db:"order_num"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ServiceInput is the body of a service create or full replace.
// swagger:model ServiceInput
type ServiceInput struct {
	// required: true
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	OrderNum    *int   `json:"order_num"`
	IsActive    *bool  `json:"is_active"`
}

func (in ServiceInput) Validate() error {
	return required([2]string{"title", in.Title})
}

// Build applies defaults to omitted fields.
func (in ServiceInput) Build() Service {
	return Service{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Color:       in.Color,
		OrderNum:    intOr(in.OrderNum, 0),
		IsActive:    boolOr(in.IsActive, true),
	}
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
