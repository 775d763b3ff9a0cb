package form

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/convertia/internal/domain/conversion"
	"github.com/yanqian/convertia/internal/domain/units"
	apperrors "github.com/yanqian/convertia/pkg/errors"
	"github.com/yanqian/convertia/pkg/util"
)

const defaultSessionTTL = 30 * time.Minute

// Service drives conversion forms held in a Store.
type Service interface {
	Create(ctx context.Context, locale string) (View, error)
	Get(ctx context.Context, id string) (View, error)
	Update(ctx context.Context, id string, update Update) (View, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	cfg    Config
	store  Store
	logger *slog.Logger
	now    util.Clock
	newID  func() string
}

// NewService wires up the form domain.
func NewService(cfg Config, store Store, logger *slog.Logger) Service {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		cfg.DefaultLocale = conversion.DefaultLocale
	}
	return &service{
		cfg:    cfg,
		store:  store,
		logger: logger.With("component", "form.service"),
		now:    util.NowUTC,
		newID:  uuid.NewString,
	}
}

func (s *service) Create(ctx context.Context, locale string) (View, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = s.cfg.DefaultLocale
	}
	session := Session{
		ID:     s.newID(),
		State:  NewState(),
		Locale: conversion.NewFormatter(locale).Locale(),
	}
	view, err := s.commit(ctx, &session)
	if err != nil {
		return View{}, err
	}
	s.logger.Info("form created", "id", session.ID, "locale", session.Locale)
	return view, nil
}

func (s *service) Get(ctx context.Context, id string) (View, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return View{}, err
	}
	return s.render(session)
}

func (s *service) Update(ctx context.Context, id string, update Update) (View, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return View{}, err
	}
	previous := session.State.Category
	if err := session.State.Apply(update); err != nil {
		return View{}, err
	}
	if session.State.Category != previous {
		s.logger.Debug("form category changed", "id", id, "from", previous, "to", session.State.Category)
	}
	return s.commit(ctx, &session)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "failed to delete form", err)
	}
	return nil
}

func (s *service) load(ctx context.Context, id string) (Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeNotFound, "form not found", nil)
	}
	session, ok, err := s.store.Load(ctx, id)
	if err != nil {
		return Session{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load form", err)
	}
	if !ok {
		return Session{}, apperrors.Wrap(apperrors.CodeNotFound, "form not found", nil)
	}
	return session, nil
}

// commit stamps and renders the session, then stores it. A session that
// cannot be rendered is never stored.
func (s *service) commit(ctx context.Context, session *Session) (View, error) {
	session.UpdatedAt = s.now()
	view, err := s.render(*session)
	if err != nil {
		return View{}, err
	}
	if err := s.store.Save(ctx, *session, s.cfg.SessionTTL); err != nil {
		return View{}, apperrors.Wrap(apperrors.CodeStorage, "failed to save form", err)
	}
	return view, nil
}

func (s *service) render(session Session) (View, error) {
	from, to, err := session.State.Units()
	if err != nil {
		return View{}, err
	}
	engine := conversion.NewEngine(conversion.NewFormatter(session.Locale))
	result, err := engine.Convert(session.State.Value, from, to)
	if err != nil {
		return View{}, err
	}
	return View{
		ID:        session.ID,
		State:     session.State,
		Units:     units.UnitsFor(session.State.Category),
		Header:    conversion.Header(from, to),
		Result:    result,
		ExpiresAt: session.UpdatedAt.Add(s.cfg.SessionTTL),
	}, nil
}
