package app

import (
	"github.com/yungbote/skillpath-backend/internal/clients/gemini"
	"github.com/yungbote/skillpath-backend/internal/platform/logger"
)

type Clients struct {
	Gemini gemini.Client
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	geminiClient, err := gemini.NewClient(log)
	if err != nil {
		return Clients{}, err
	}
	return Clients{Gemini: geminiClient}, nil
}
