package models

// Stats holds the dashboard counters.
// swagger:model Stats
type Stats struct {
	Services       int `json:"services" db:"services"`
	Projects       int `json:"projects" db:"projects"`
	Testimonials   int `json:"testimonials" db:"testimonials"`
	News           int `json:"news" db:"news"`
	UnreadMessages int `json:"unread_messages" db:"unread_messages"`
	TotalMessages  int `json:"total_messages" db:"total_messages"`
}
