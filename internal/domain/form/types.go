package form

import (
	"context"
	"time"

	"github.com/yanqian/convertia/internal/domain/conversion"
	"github.com/yanqian/convertia/internal/domain/units"
)

// State is the selection a user builds on the conversion screen.
type State struct {
	Category units.Category `json:"category" msgpack:"category"`
	From     string         `json:"from" msgpack:"from"`
	To       string         `json:"to" msgpack:"to"`
	Value    float64        `json:"value" msgpack:"value"`
}

// Update carries the fields a client wants to change. Nil fields are left
// untouched.
type Update struct {
	Category *string  `json:"category,omitempty"`
	From     *string  `json:"from,omitempty"`
	To       *string  `json:"to,omitempty"`
	Value    *float64 `json:"value,omitempty"`
}

// Session is a stored form.
type Session struct {
	ID        string    `json:"id" msgpack:"id"`
	State     State     `json:"state" msgpack:"state"`
	Locale    string    `json:"locale" msgpack:"locale"`
	UpdatedAt time.Time `json:"updatedAt" msgpack:"updated_at"`
}

// View is what transports render: the state plus everything derived from it.
type View struct {
	ID        string            `json:"id"`
	State     State             `json:"state"`
	Units     []units.Unit      `json:"units"`
	Header    string            `json:"header"`
	Result    conversion.Result `json:"result"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// Store keeps sessions for the lifetime of a visit.
type Store interface {
	Load(ctx context.Context, id string) (Session, bool, error)
	Save(ctx context.Context, session Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// Config holds runtime knobs for the form service.
type Config struct {
	SessionTTL    time.Duration
	DefaultLocale string
}
