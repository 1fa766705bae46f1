package session

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceship/internal/config"
	gameconfig "github.com/tomz197/spaceship/internal/loop/config"
)

// OptionsFromEnv reads session settings from the environment:
// SPACESHIP_PORT_BASE, SPACESHIP_JOIN_HOST, SPACESHIP_CONNECT_TIMEOUT and
// SPACESHIP_READ_TIMEOUT.
func OptionsFromEnv(logger *log.Logger) Options {
	return Options{
		PortBase:       config.GetEnvInt("SPACESHIP_PORT_BASE", gameconfig.PortBase),
		JoinHost:       config.GetEnv("SPACESHIP_JOIN_HOST", gameconfig.DefaultJoinHost),
		ConnectTimeout: config.GetEnvDuration("SPACESHIP_CONNECT_TIMEOUT", 0),
		ReadTimeout:    config.GetEnvDuration("SPACESHIP_READ_TIMEOUT", gameconfig.ReadTimeout),
		Logger:         logger,
	}
}
