package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubjectPrefix(t *testing.T) {
	t.Parallel()

	cfg := Config{SubjectPrefix: "[Portal Empleos] "}

	tests := []struct {
		name    string
		subject string
		want    string
	}{
		{"prefix applied", "New application", "[Portal Empleos] New application"},
		{"prefix not duplicated", "[Portal Empleos] New application", "[Portal Empleos] New application"},
		{"empty subject", "", "[Portal Empleos] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, cfg.subject(tt.subject))
		})
	}
}

func TestSubjectWithoutPrefix(t *testing.T) {
	t.Parallel()

	cfg := Config{}
	require.Equal(t, "New application", cfg.subject("New application"))
}

func TestNewResend(t *testing.T) {
	t.Parallel()

	s := NewResend(Config{APIKey: "re_test", FromEmail: "noreply@portalempleos.com.mx"})
	require.NotNil(t, s)
	require.NotNil(t, s.client)
}
