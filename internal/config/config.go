package config

import (
	crypto "crypto/ed25519"
	"errors"
	"net/url"
	"os"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"interaction-gate/pkg/discord"
	customError "interaction-gate/pkg/errors"
)

const (
	EnvPublicKey    = "PUBLIC_KEY"
	EnvPort         = "PORT"
	EnvRoute        = "ROUTE"
	EnvMaxBodyBytes = "MAX_BODY_BYTES"
	EnvUpstreamUrl  = "UPSTREAM_URL"
	EnvSqsUrl       = "MESSAGE_QUEUE_URL"

	DefaultPort         = "3000"
	DefaultRoute        = "/"
	DefaultMaxBodyBytes = 1 << 20
)

type Config struct {
	Logger *zap.Logger

	// Trust material, immutable after Load
	PublicKey crypto.PublicKey

	Port         string
	Route        string
	MaxBodyBytes int64

	// Next stage, at most one is set
	UpstreamUrl string
	SqsUrl      string
}

func New() *Config {
	return &Config{
		Logger:       NewLogger(),
		Port:         DefaultPort,
		Route:        DefaultRoute,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

func NewLogger() *zap.Logger {
	logCfg := zap.NewProductionConfig()
	logCfg.DisableStacktrace = true
	logger, _ := logCfg.Build()
	return logger
}

// Load reads every variable and reports all invalid ones together. A missing
// public key is reported on its own.
func (c *Config) Load() error {
	publicKey := os.Getenv(EnvPublicKey)
	if publicKey == "" {
		return customError.MissingEnvErr{EnvMap: map[string]string{
			EnvPublicKey: publicKey,
		}}
	}

	var errs error
	key, err := discord.DecodePublicKey(publicKey)
	if err != nil {
		errs = multierr.Append(errs, customError.InvalidEnvErr{Key: EnvPublicKey, Err: err})
	}
	c.PublicKey = key

	if port, ok := os.LookupEnv(EnvPort); ok {
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			errs = multierr.Append(errs, customError.InvalidEnvErr{Key: EnvPort, Err: err})
		}
		c.Port = port
	}

	if route, ok := os.LookupEnv(EnvRoute); ok {
		if route == "" || route[0] != '/' {
			errs = multierr.Append(errs, customError.InvalidEnvErr{Key: EnvRoute, Err: errors.New("must start with /")})
		}
		c.Route = route
	}

	if maxBody, ok := os.LookupEnv(EnvMaxBodyBytes); ok {
		n, err := strconv.ParseInt(maxBody, 10, 64)
		if err == nil && n <= 0 {
			err = errors.New("must be positive")
		}
		if err != nil {
			errs = multierr.Append(errs, customError.InvalidEnvErr{Key: EnvMaxBodyBytes, Err: err})
		}
		c.MaxBodyBytes = n
	}

	c.UpstreamUrl = os.Getenv(EnvUpstreamUrl)
	if c.UpstreamUrl != "" {
		if u, err := url.Parse(c.UpstreamUrl); err != nil || u.Scheme == "" || u.Host == "" {
			errs = multierr.Append(errs, customError.InvalidEnvErr{Key: EnvUpstreamUrl, Err: errors.New("must be an absolute URL")})
		}
	}
	c.SqsUrl = os.Getenv(EnvSqsUrl)
	if c.UpstreamUrl != "" && c.SqsUrl != "" {
		errs = multierr.Append(errs, errors.New("only one of "+EnvUpstreamUrl+" and "+EnvSqsUrl+" may be set"))
	}

	return errs
}

// RequireNextStage fails unless an upstream or a queue is configured.
func (c *Config) RequireNextStage() error {
	if c.UpstreamUrl == "" && c.SqsUrl == "" {
		return customError.MissingEnvErr{EnvMap: map[string]string{
			EnvUpstreamUrl: c.UpstreamUrl,
			EnvSqsUrl:      c.SqsUrl,
		}}
	}
	return nil
}
