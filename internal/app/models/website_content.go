package models

import (
	"encoding/json"
	"time"
)

// WebsiteContent is the editable JSON document behind one home page section
type WebsiteContent struct {
	Section   string          `json:"section" db:"section" example:"hero"`
	Content   json.RawMessage `json:"content" db:"content" swaggertype:"object"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}
