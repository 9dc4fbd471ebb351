package discord

import (
	crypto "crypto/ed25519"
	"encoding/hex"
)

// Sign returns the hex signature a sender would put in SignatureHeader.
func Sign(privateKey crypto.PrivateKey, timestamp string, body []byte) string {
	msg := append([]byte(timestamp), body...)
	return hex.EncodeToString(crypto.Sign(privateKey, msg))
}
