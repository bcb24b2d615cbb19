package store

import "github.com/google/uuid"

// NewListID returns a fresh opaque list id of the form list-<uuid>.
func NewListID() string {
	return "list-" + uuid.NewString()
}
