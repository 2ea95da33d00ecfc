//go:build unit

package infra

import (
	"bytes"
	"log/slog"
	"testing"

	"travelmate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name      string
		kind      RepositoryErrorKind
		cause     error
		wantMsg   string
		wantLevel string
	}{
		{
			name:      "not found without cause",
			kind:      KindNotFound,
			wantMsg:   "NOT_FOUND: trip not found",
			wantLevel: "DEBUG",
		},
		{
			name:      "duplicate key with cause",
			kind:      KindDuplicateKey,
			cause:     errs.New("email taken"),
			wantMsg:   "DUPLICATE_KEY: trip not found: trip not found: email taken",
			wantLevel: "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			err := WrapRepoErr(logger, tt.kind, "trip not found", tt.cause)

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.True(t, IsKind(err, tt.kind))
			assert.Contains(t, buf.String(), "level="+tt.wantLevel)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	err := errs.Wrap(WrapRepoErr(logger, KindNotFound, "user not found", nil), "lookup")

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindDuplicateKey))
	assert.False(t, IsKind(errs.New("plain"), KindNotFound))
	assert.False(t, IsKind(nil, KindNotFound))
}
