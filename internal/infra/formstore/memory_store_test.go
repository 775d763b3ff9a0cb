package formstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/convertia/internal/domain/form"
)

func TestMemoryStoreSaveLoadDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	session := form.Session{ID: "a", State: form.NewState(), Locale: "en-US"}

	_, ok, err := store.Load(ctx, "a")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Save(ctx, session, time.Minute))
	got, ok, err := store.Load(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, session, got)

	require.NoError(t, store.Delete(ctx, "a"))
	require.NoError(t, store.Delete(ctx, "missing"))
	require.Equal(t, 0, store.size())
}

func TestMemoryStoreExpiresSessions(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, form.Session{ID: "short"}, time.Minute))
	require.NoError(t, store.Save(ctx, form.Session{ID: "forever"}, 0))
	require.Equal(t, 2, store.size())

	now = now.Add(2 * time.Minute)
	_, ok, err := store.Load(ctx, "short")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = store.Load(ctx, "forever")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, store.size())
}

func TestSessionCodec(t *testing.T) {
	session := form.Session{
		ID:        "3b241101-e2bb-4255-8caf-4136c566a962",
		State:     form.State{Category: "length", From: "miles", To: "kilometers", Value: 26.2},
		Locale:    "de-DE",
		UpdatedAt: time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC),
	}
	payload, err := encodeSession(session)
	require.NoError(t, err)

	got, err := decodeSession(payload)
	require.NoError(t, err)
	require.Equal(t, session.State, got.State)
	require.Equal(t, session.Locale, got.Locale)
	require.True(t, session.UpdatedAt.Equal(got.UpdatedAt))

	_, err = decodeSession([]byte{0xc1})
	require.Error(t, err)
}
