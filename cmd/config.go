package cmd

import (
	"github.com/meridiancruises/compliance-backend/utils"
)

func pgConfigFromEnv() utils.PGConfig {
	return utils.PGConfig{
		ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:         utils.GetEnv("PG_DATABASE", "compliance"),
		Hostname:         utils.GetEnv("PG_HOSTNAME", ""),
		Password:         utils.GetEnv("PG_PASSWORD", ""),
		Port:             utils.GetEnv("PG_PORT", "5432"),
		User:             utils.GetEnv("PG_USER", ""),
	}
}
