package utils

import (
	"os"

	"github.com/technegotia/tn_quests/environment"
	"go.uber.org/zap"
)

func NewLogger() (*zap.Logger, error) {
	if os.Getenv(environment.Environment) == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
