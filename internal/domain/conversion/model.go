package conversion

import (
	"context"
	"time"

	"github.com/yanqian/convertia/internal/domain/units"
)

// Request is a one-shot conversion issued by a transport.
type Request struct {
	Value  float64 `json:"value"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Locale string  `json:"locale"`
}

// Response is serialized back to API consumers.
type Response struct {
	Category  units.Category `json:"category"`
	From      units.Unit     `json:"from"`
	To        units.Unit     `json:"to"`
	Input     float64        `json:"input"`
	Value     float64        `json:"value"`
	Formatted string         `json:"formatted"`
	Header    string         `json:"header"`
	Locale    string         `json:"locale"`
}

// CategoryInfo bundles a category with its ordered units.
type CategoryInfo struct {
	Category    units.Category `json:"category"`
	Title       string         `json:"title"`
	Units       []units.Unit   `json:"units"`
	DefaultFrom string         `json:"defaultFrom"`
	DefaultTo   string         `json:"defaultTo"`
}

// HistoryEntry records one successful conversion.
type HistoryEntry struct {
	ID        string         `json:"id"`
	Category  units.Category `json:"category"`
	From      string         `json:"from"`
	To        string         `json:"to"`
	Input     float64        `json:"input"`
	Output    float64        `json:"output"`
	Formatted string         `json:"formatted"`
	Locale    string         `json:"locale"`
	CreatedAt time.Time      `json:"createdAt"`
}

// HistoryRepository stores the conversion log.
type HistoryRepository interface {
	Record(ctx context.Context, entry HistoryEntry) error
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)
}

// Config holds runtime knobs for the conversion service.
type Config struct {
	DefaultLocale string
	HistoryLimit  int
}
