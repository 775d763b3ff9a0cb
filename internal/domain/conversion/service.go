package conversion

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/yanqian/convertia/internal/domain/units"
	apperrors "github.com/yanqian/convertia/pkg/errors"
	"github.com/yanqian/convertia/pkg/util"
)

// Service exposes the catalog and the engine to transports.
type Service interface {
	Categories(ctx context.Context) []CategoryInfo
	Units(ctx context.Context, category string) (CategoryInfo, error)
	Convert(ctx context.Context, req Request) (Response, error)
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)
}

type service struct {
	cfg     Config
	history HistoryRepository
	logger  *slog.Logger
	now     util.Clock
	newID   func() string
}

// NewService wires up the conversion domain.
func NewService(cfg Config, history HistoryRepository, logger *slog.Logger) Service {
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		cfg.DefaultLocale = DefaultLocale
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 50
	}
	return &service{
		cfg:     cfg,
		history: history,
		logger:  logger.With("component", "conversion.service"),
		now:     util.NowUTC,
		newID:   uuid.NewString,
	}
}

func (s *service) Categories(_ context.Context) []CategoryInfo {
	out := make([]CategoryInfo, 0, len(units.Categories()))
	for _, c := range units.Categories() {
		out = append(out, describe(c))
	}
	return out
}

func (s *service) Units(_ context.Context, category string) (CategoryInfo, error) {
	c, err := units.ParseCategory(category)
	if err != nil {
		return CategoryInfo{}, apperrors.Wrap(apperrors.CodeInvalidInput, "category must be one of temperature, length, time, volume", err)
	}
	return describe(c), nil
}

func (s *service) Convert(ctx context.Context, req Request) (Response, error) {
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "value must be a finite number", nil)
	}
	from, ok := units.Lookup(req.From)
	if !ok {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown unit %q", req.From), nil)
	}
	to, ok := units.Lookup(req.To)
	if !ok {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown unit %q", req.To), nil)
	}

	locale := strings.TrimSpace(req.Locale)
	if locale == "" {
		locale = s.cfg.DefaultLocale
	}
	formatter := NewFormatter(locale)

	result, err := NewEngine(formatter).Convert(req.Value, from, to)
	if err != nil {
		s.logger.Warn("conversion rejected", "from", from.ID, "to", to.ID, "error", err)
		return Response{}, err
	}

	resp := Response{
		Category:  from.Category,
		From:      from,
		To:        to,
		Input:     req.Value,
		Value:     result.Value,
		Formatted: result.Formatted,
		Header:    Header(from, to),
		Locale:    formatter.Locale(),
	}
	s.record(ctx, resp)
	return resp, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	if limit <= 0 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}
	entries, err := s.history.Recent(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "failed to load conversion history", err)
	}
	return entries, nil
}

func (s *service) record(ctx context.Context, resp Response) {
	if s.history == nil {
		return
	}
	entry := HistoryEntry{
		ID:        s.newID(),
		Category:  resp.Category,
		From:      resp.From.ID,
		To:        resp.To.ID,
		Input:     resp.Input,
		Output:    resp.Value,
		Formatted: resp.Formatted,
		Locale:    resp.Locale,
		CreatedAt: s.now(),
	}
	if err := s.history.Record(ctx, entry); err != nil {
		s.logger.Error("record conversion history failed", "error", err)
	}
}

// Header is the "<from> to <to>" caption shown above the unit pickers.
func Header(from, to units.Unit) string {
	return from.Symbol + " to " + to.Symbol
}

func describe(c units.Category) CategoryInfo {
	from, to := units.DefaultPair(c)
	return CategoryInfo{
		Category:    c,
		Title:       c.Title(),
		Units:       units.UnitsFor(c),
		DefaultFrom: from.ID,
		DefaultTo:   to.ID,
	}
}
