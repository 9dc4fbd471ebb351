package discord

import (
	crypto "crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	SignatureHeader = "x-signature-ed25519"
	TimestampHeader = "x-signature-timestamp"
)

var (
	ErrMissingSignature   = errors.New("missing signature")
	ErrMalformedSignature = errors.New("malformed signature")
	ErrMissingTimestamp   = errors.New("missing timestamp")
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrUnreadableBody     = errors.New("unreadable body")
	ErrMissingBody        = errors.New("missing body")
	ErrInvalidSignature   = errors.New("invalid signature")
)

// VerifyFunc reports whether sig is a valid signature of msg by publicKey.
type VerifyFunc func(publicKey crypto.PublicKey, msg, sig []byte) bool

// Ed25519Verify is the default VerifyFunc.
func Ed25519Verify(publicKey crypto.PublicKey, msg, sig []byte) bool {
	return crypto.Verify(publicKey, msg, sig)
}

// SigningContext holds the material needed to verify one request.
type SigningContext struct {
	Body      []byte
	Timestamp string
	Signature []byte
}

// NewSigningContext validates the raw header values and decodes the signature.
func NewSigningContext(body []byte, timestamp, signature string) (SigningContext, error) {
	if len(body) == 0 {
		return SigningContext{}, ErrMissingBody
	}
	if signature == "" {
		return SigningContext{}, ErrMissingSignature
	}
	sig, err := hex.DecodeString(signature)
	if err != nil || len(sig) != crypto.SignatureSize {
		return SigningContext{}, ErrMalformedSignature
	}

	if timestamp == "" {
		return SigningContext{}, ErrMissingTimestamp
	}
	if !isDecimal(timestamp) {
		return SigningContext{}, ErrMalformedTimestamp
	}

	return SigningContext{
		Body:      body,
		Timestamp: timestamp,
		Signature: sig,
	}, nil
}

// Message returns timestamp || body. It always allocates so Body is never aliased.
func (s SigningContext) Message() []byte {
	msg := make([]byte, 0, len(s.Timestamp)+len(s.Body))
	msg = append(msg, s.Timestamp...)
	return append(msg, s.Body...)
}

// Verify runs verify over the canonical message. A panic inside verify counts
// as a failed verification.
func (s SigningContext) Verify(publicKey crypto.PublicKey, verify VerifyFunc) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return verify(publicKey, s.Message(), s.Signature)
}

// Authenticate checks the request signature with ed25519.
func Authenticate(body []byte, timestamp, signature string, publicKey crypto.PublicKey) bool {
	return AuthenticateWith(body, timestamp, signature, publicKey, Ed25519Verify) == nil
}

// AuthenticateWith returns nil only when the request is authentic. The error
// says why it is not and is meant for logs, not for the caller.
func AuthenticateWith(body []byte, timestamp, signature string, publicKey crypto.PublicKey, verify VerifyFunc) error {
	sc, err := NewSigningContext(body, timestamp, signature)
	if err != nil {
		return err
	}
	if !sc.Verify(publicKey, verify) {
		return ErrInvalidSignature
	}
	return nil
}

func DecodePublicKey(publicKey string) (crypto.PublicKey, error) {
	if publicKey == "" {
		return nil, errors.New("missing public key")
	}
	key, err := hex.DecodeString(publicKey)
	if err != nil {
		return nil, err
	}
	if len(key) != crypto.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", crypto.PublicKeySize, len(key))
	}
	return crypto.PublicKey(key), nil
}

// HeaderValue looks key up case-insensitively. API Gateway lowercases header
// names but other invokers may not.
func HeaderValue(headers map[string]string, key string) string {
	if val, ok := headers[key]; ok {
		return val
	}
	for k, val := range headers {
		if strings.EqualFold(k, key) {
			return val
		}
	}
	return ""
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
