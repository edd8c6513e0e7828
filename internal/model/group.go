package model

import "time"

// GroupRecord is a named, curated subset of avatars. The group list is
// loaded once at startup and is append-only for the session.
type GroupRecord struct {
	ID              string    `json:"id"`
	Title           string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	NumAvatars      int       `json:"num_avatars"`
	Public          bool      `json:"public"`
	PreviewImageURL string    `json:"preview_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
	UpdatedAt       time.Time `json:"updated_at,omitzero"`
}
