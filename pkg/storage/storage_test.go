package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/portalempleos/secureupload/pkg/upload"
)

func validConfig() Config {
	return Config{
		Bucket:    "portalempleos-test",
		AccessKey: "AKIATEST",
		SecretKey: "secret",
		Region:    "mx-central-1",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing bucket", func(c *Config) { c.Bucket = "" }, true},
		{"missing access key", func(c *Config) { c.AccessKey = "" }, true},
		{"missing secret key", func(c *Config) { c.SecretKey = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := Config{Bucket: "b", AccessKey: "a", SecretKey: "s"}
	cfg.applyDefaults()

	require.Equal(t, DefaultRegion, cfg.Region)
	require.Equal(t, DefaultSignedURLExpiry, cfg.SignedURLExpiry)
}

func TestConfigDefaultsKeepExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.SignedURLExpiry = time.Hour
	cfg.applyDefaults()

	require.Equal(t, "mx-central-1", cfg.Region)
	require.Equal(t, time.Hour, cfg.SignedURLExpiry)
}

func TestNewMediaRequiresChain(t *testing.T) {
	t.Parallel()

	_, err := NewMedia(validConfig(), nil, nil)
	require.ErrorIs(t, err, ErrNilChain)
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	chain := upload.NewChain(upload.Config{}, nil)

	media, err := NewMedia(validConfig(), chain, nil)
	require.NoError(t, err)
	require.Equal(t, LocationMedia, media.location)
	require.Equal(t, ACLPrivate, media.acl)
	require.False(t, media.overwrite)
	require.NotNil(t, media.chain)

	static, err := NewStatic(validConfig())
	require.NoError(t, err)
	require.Equal(t, LocationStatic, static.location)
	require.Equal(t, ACLPublicRead, static.acl)
	require.True(t, static.overwrite)
	require.Nil(t, static.chain)
}
