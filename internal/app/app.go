package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"interaction-gate/internal/config"
)

const loggerName = "app"

var errUnsupportedType = errors.New("unsupported interaction type")

// App is the default handler behind the gate. It only sees authentic,
// non-ping interactions.
type App struct {
	logger *zap.Logger
}

func New(cfg *config.Config) *App {
	return &App{
		logger: cfg.Logger.Named(loggerName),
	}
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		a.logger.Error("failed to read request", zap.Error(err))
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	var req discordgo.Interaction
	if err := json.Unmarshal(body, &req); err != nil {
		a.logger.Error("received bad request", zap.Error(err))
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	rsp, err := a.reqHandler(&req)
	if err != nil {
		a.logger.Error("failed to handle request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeResponse(rsp, w)
}

func (a *App) reqHandler(req *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	var content string
	switch data := req.Data.(type) {
	case discordgo.ApplicationCommandInteractionData:
		content = fmt.Sprintf("Received command: [%s]", data.Name)
	case discordgo.MessageComponentInteractionData:
		content = fmt.Sprintf("Received component: [%s]", data.CustomID)
	case discordgo.ModalSubmitInteractionData:
		content = fmt.Sprintf("Received modal: [%s]", data.CustomID)
	default:
		return nil, errUnsupportedType
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}, nil
}

func writeResponse(rsp *discordgo.InteractionResponse, w http.ResponseWriter) {
	jsonRsp, err := json.Marshal(rsp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(jsonRsp)
}
