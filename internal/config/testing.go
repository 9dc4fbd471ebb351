package config

import (
	"bytes"
	crypto "crypto/ed25519"

	"go.uber.org/zap"
)

// MockPrivateKey signs requests accepted by NewTestConfig.
var MockPrivateKey = crypto.NewKeyFromSeed(bytes.Repeat([]byte{0x07}, crypto.SeedSize))

func NewTestConfig() *Config {
	cfg := New()
	cfg.Logger = zap.NewNop()
	cfg.PublicKey = MockPrivateKey.Public().(crypto.PublicKey)
	return cfg
}
