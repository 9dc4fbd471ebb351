package config_test

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interaction-gate/internal/config"
)

func Test_Load(t *testing.T) {
	pubKey := hex.EncodeToString(config.NewTestConfig().PublicKey)

	tests := []struct {
		name   string
		env    map[string]string
		expErr []string
		check  func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "Happy path - Defaults",
			env:  map[string]string{config.EnvPublicKey: pubKey},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.DefaultPort, cfg.Port)
				assert.Equal(t, config.DefaultRoute, cfg.Route)
				assert.EqualValues(t, config.DefaultMaxBodyBytes, cfg.MaxBodyBytes)
				assert.Empty(t, cfg.UpstreamUrl)
				assert.Empty(t, cfg.SqsUrl)
			},
		},
		{
			name: "Happy path - Overrides",
			env: map[string]string{
				config.EnvPublicKey:    pubKey,
				config.EnvPort:         "8080",
				config.EnvRoute:        "/interactions",
				config.EnvMaxBodyBytes: "4096",
				config.EnvUpstreamUrl:  "http://localhost:9000/discord",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, "/interactions", cfg.Route)
				assert.EqualValues(t, 4096, cfg.MaxBodyBytes)
				assert.Equal(t, "http://localhost:9000/discord", cfg.UpstreamUrl)
				assert.NoError(t, cfg.RequireNextStage())
			},
		},
		{
			name:   "Sad path - Missing public key",
			env:    map[string]string{},
			expErr: []string{"insufficient env variables", config.EnvPublicKey},
		},
		{
			name:   "Sad path - Non-hexidecimal public key",
			env:    map[string]string{config.EnvPublicKey: "!@#$%^&*()"},
			expErr: []string{config.EnvPublicKey},
		},
		{
			name: "Sad path - Reports every invalid variable",
			env: map[string]string{
				config.EnvPublicKey:    pubKey,
				config.EnvPort:         "http",
				config.EnvRoute:        "interactions",
				config.EnvMaxBodyBytes: "-1",
				config.EnvUpstreamUrl:  "localhost",
			},
			expErr: []string{config.EnvPort, config.EnvRoute, config.EnvMaxBodyBytes, config.EnvUpstreamUrl},
		},
		{
			name: "Sad path - Upstream and queue both set",
			env: map[string]string{
				config.EnvPublicKey:   pubKey,
				config.EnvUpstreamUrl: "http://localhost:9000",
				config.EnvSqsUrl:      "sqsurl",
			},
			expErr: []string{"only one of"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, val := range tt.env {
				t.Setenv(key, val)
			}

			cfg := config.New()
			err := cfg.Load()

			if len(tt.expErr) == 0 {
				require.NoError(t, err)
				tt.check(t, cfg)
			} else {
				require.Error(t, err)
				for _, msg := range tt.expErr {
					assert.Contains(t, err.Error(), msg)
				}
			}
		})
	}
}

func Test_Config_RequireNextStage(t *testing.T) {
	cfg := config.New()
	assert.ErrorContains(t, cfg.RequireNextStage(), "insufficient env variables")

	cfg.SqsUrl = "sqsurl"
	assert.NoError(t, cfg.RequireNextStage())
}

// clearEnv unsets every variable Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	for _, key := range []string{
		config.EnvPublicKey, config.EnvPort, config.EnvRoute,
		config.EnvMaxBodyBytes, config.EnvUpstreamUrl, config.EnvSqsUrl,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
