package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	Port            string
	LogLevel        string
}

var Env *EnvConfig

func init() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "skydry-api"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", "/skydry"),
		Port:            getStringOrDefault("SERVER_PORT", "8080"),
		LogLevel:        getStringOrDefault("LOG_LEVEL", "info"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
