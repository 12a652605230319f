package models

import "time"

// DefaultContentType is stored for entries created through an upsert.
const DefaultContentType = "text"

// ContentEntry is one row of site content, unique on (section, key).
type ContentEntry struct {
	Section   string    `db:"section"`
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	Type      string    `db:"type"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ContentValue is the serialized form of a single entry.
// swagger:model ContentValue
type ContentValue struct {
	// example: Quality food imports
	Value string `json:"value"`
	// example: text
	Type      string    `json:"type"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContentSection maps keys of one section to their values.
type ContentSection map[string]ContentValue

// SiteContent maps section names to their entries.
type SiteContent map[string]ContentSection

// GroupContent folds rows into sections.
func GroupContent(entries []ContentEntry) SiteContent {
	content := make(SiteContent)
	for _, e := range entries {
		section, ok := content[e.Section]
		if !ok {
			section = make(ContentSection)
			content[e.Section] = section
		}
		section[e.Key] = ContentValue{Value: e.Value, Type: e.Type, UpdatedAt: e.UpdatedAt}
	}
	return content
}

// ContentUpdate is the body of a content upsert.
// swagger:model ContentUpdate
type ContentUpdate struct {
	// required: true
	Value *string `json:"value"`
}

// Validate requires value to be present; an empty string is a valid value.
func (c ContentUpdate) Validate() error {
	if c.Value == nil {
		return &ValidationError{Message: "value is required"}
	}
	return nil
}
