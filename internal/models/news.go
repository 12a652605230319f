package models

import "time"

// News is a news article. Articles are listed newest first.
// swagger:model News
type News struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Excerpt    string    `json:"excerpt" db:"excerpt"`
	Content    string    `json:"content" db:"content"`
	Image      string    `json:"image" db:"image"`
	Category   string    `json:"category" db:"category"`
	Author     string    `json:"author" db:"author"`
	Date       string    `json:"date" db:"date"`
	IsFeatured bool      `json:"is_featured" db:"is_featured"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// NewsInput is the body of a news create or full replace.
// swagger:model NewsInput
type NewsInput struct {
	// required: true
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	Category   string `json:"category"`
	Author     string `json:"author"`
	Date       string `json:"date"`
	IsFeatured *bool  `json:"is_featured"`
	IsActive   *bool  `json:"is_active"`
}

func (in NewsInput) Validate() error {
	return required([2]string{"title", in.Title})
}

// Build applies defaults to omitted fields.
func (in NewsInput) Build() News {
	return News{
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		Image:      in.Image,
		Category:   in.Category,
		Author:     in.Author,
		Date:       in.Date,
		IsFeatured: boolOr(in.IsFeatured, false),
		IsActive:   boolOr(in.IsActive, true),
	}
}
