package discord

import (
	"encoding/json"
	"errors"

	"github.com/bwmarrin/discordgo"
)

const UnauthorizedMessage = "Unauthorized"

var (
	PingResponse = discordgo.InteractionResponse{
		Type: discordgo.InteractionResponsePong,
	}
	DeferredResponse = discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}

	PingResponseJson     []byte
	DeferredResponseJson []byte
)

// Marshal JSON for common responses
func init() {
	var err error

	PingResponseJson, err = json.Marshal(PingResponse)
	if err != nil {
		panic(err)
	}

	DeferredResponseJson, err = json.Marshal(DeferredResponse)
	if err != nil {
		panic(err)
	}
}

var errMissingType = errors.New("missing interaction type")

// envelope is the only part of an interaction the gate decodes.
type envelope struct {
	Type *discordgo.InteractionType `json:"type"`
}

// InteractionType reads the type discriminator from a raw interaction body.
func InteractionType(body []byte) (discordgo.InteractionType, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return 0, err
	}
	if env.Type == nil {
		return 0, errMissingType
	}
	return *env.Type, nil
}

// IsPing reports whether body is a ping interaction. Bodies that cannot be
// decoded are not pings.
func IsPing(body []byte) bool {
	t, err := InteractionType(body)
	return err == nil && t == discordgo.InteractionPing
}
