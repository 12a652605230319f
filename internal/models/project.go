package models

import "time"

// Project is a completed shipment or facility showcased on the site.
// swagger:model Project
type Project struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	Location    string    `json:"location" db:"location"`
	Date        string    `json:"date" db:"date"`     // free-form display date
	Weight      string    `json:"weight" db:"weight"` // free-form volume label, e.g. "250K Ton"
	OrderNum    int       `json:"order_num" db:"order_num"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ProjectInput is the body of a project create or full replace.
// swagger:model ProjectInput
type ProjectInput struct {
	// required: true
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Weight      string `json:"weight"`
	OrderNum    *int   `json:"order_num"`
	IsActive    *bool  `json:"is_active"`
}

func (in ProjectInput) Validate() error {
	return required([2]string{"title", in.Title})
}

// Build applies defaults to omitted fields.
func (in ProjectInput) Build() Project {
	return Project{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Location:    in.Location,
		Date:        in.Date,
		Weight:      in.Weight,
		OrderNum:    intOr(in.OrderNum, 0),
		IsActive:    boolOr(in.IsActive, true),
	}
}
