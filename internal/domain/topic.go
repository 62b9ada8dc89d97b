package domain

import "errors"

// Topic validation errors
var (
	ErrEmptyTopicSlug = errors.New("topic slug cannot be empty")
)

// Topic is a named discussion category under which articles are posted.
// Topics are seeded externally and immutable through this API.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Validate checks if the Topic has valid data.
func (t *Topic) Validate() error {
	if t.Slug == "" {
		return ErrEmptyTopicSlug
	}
	return nil
}
