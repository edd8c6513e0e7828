package model

import "time"

// Gender is the catalog's avatar gender classification.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is one of the catalog's known genders.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// AvatarRecord is one entry of a paginated avatar listing. Records are
// immutable once fetched; a new page replaces the previous one wholesale.
type AvatarRecord struct {
	ID              string   `json:"avatar_id"`
	Name            string   `json:"avatar_name"`
	Gender          Gender   `json:"gender"`
	Premium         bool     `json:"premium"`
	PreviewImageURL string   `json:"preview_image_url"`
	PreviewVideoURL string   `json:"preview_video_url"`
	Type            string   `json:"type,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	DefaultVoiceID  string   `json:"default_voice_id,omitempty"`
}

// AvatarDetail extends AvatarRecord with the fields the detail endpoint
// returns. It is fetched lazily per detail view and discarded on close.
type AvatarDetail struct {
	AvatarRecord

	Description          string        `json:"description,omitempty"`
	Status               string        `json:"status,omitempty"`
	Languages            []string      `json:"supported_languages,omitempty"`
	Voices               []VoiceOption `json:"voices,omitempty"`
	VideoCount           int           `json:"video_count"`
	TotalDurationSeconds float64       `json:"total_duration_seconds"`
	CreatedAt            time.Time     `json:"created_at,omitzero"`
	UpdatedAt            time.Time     `json:"updated_at,omitzero"`
}

// VoiceOption is a voice an avatar can speak with. Owned by its parent
// AvatarDetail, never persisted independently.
type VoiceOption struct {
	ID              string `json:"voice_id"`
	Name            string `json:"name"`
	Language        string `json:"language"`
	Gender          Gender `json:"gender"`
	PreviewAudioURL string `json:"preview_audio_url,omitempty"`
}
