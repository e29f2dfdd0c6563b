package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	inner := errors.New("no such file")
	err := NewUserError("cannot open dataset", inner)

	assert.Equal(t, "cannot open dataset: no such file", err.Error())
	assert.ErrorIs(t, err, inner)

	var ue *UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "cannot open dataset", ue.UserMessage)

	assert.Equal(t, "plain", NewUserError("plain", nil).Error())
}

func TestInvalidParameter(t *testing.T) {
	err := InvalidParameter("min-sup", "must be in (0, 1], got %v", 1.5)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "min-sup")
	assert.Contains(t, err.Error(), "1.5")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "default", input: "", want: slog.LevelInfo},
		{name: "upper case", input: "WARN", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "unknown", input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	h, err := NewHandler(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	slog.New(h).Info("level done", "frontier", 2)
	assert.Contains(t, buf.String(), `"frontier":2`)

	_, err = NewHandler(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
