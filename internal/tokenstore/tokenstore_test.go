package tokenstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTTL(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr string
	}{
		{in: "30s", want: 30 * time.Second},
		{in: "15m", want: 15 * time.Minute},
		{in: "12h", want: 12 * time.Hour},
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "2w", wantErr: "invalid time unit"},
		{in: "xm", wantErr: "invalid duration value"},
		{in: "m", wantErr: "invalid duration"},
		{in: "", wantErr: "invalid duration"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTTL(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMilliseconds(t *testing.T) {
	ttl, err := ParseTTL("2h")
	require.NoError(t, err)
	assert.Equal(t, int64(7_200_000), Milliseconds(ttl))
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	session := Session{UserID: "0190a000-0000-7000-8000-000000000001", Email: "a@b.com", Name: "Ann"}

	t.Run("set_get_delete", func(t *testing.T) {
		store := New(NewMemoryKV(), time.Hour)

		require.NoError(t, store.SetToken(ctx, "tok", session))

		got, err := store.GetToken(ctx, "tok")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, session, *got)

		require.NoError(t, store.DeleteToken(ctx, "tok"))

		got, err = store.GetToken(ctx, "tok")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete_missing", func(t *testing.T) {
		store := New(NewMemoryKV(), time.Hour)
		assert.ErrorIs(t, store.DeleteToken(ctx, "nope"), ErrTokenNotFound)
	})

	t.Run("expiry", func(t *testing.T) {
		kv := NewMemoryKV()
		now := time.Now()
		kv.now = func() time.Time { return now }
		store := New(kv, time.Minute)

		require.NoError(t, store.SetToken(ctx, "tok", session))
		now = now.Add(2 * time.Minute)

		got, err := store.GetToken(ctx, "tok")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
