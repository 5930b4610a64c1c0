package resource

import (
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	props      = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads application properties from YAML
func init() {
	var value, ok = os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	if err := Init(value); err != nil {
		log.Printf("Application properties not loaded, using defaults: %v", err)
	}
}

// Init reads the YAML file at filepath and resolves ${ENV:default} placeholders.
// Keys already loaded are replaced, keys absent from the new file are kept.
func Init(filepath string) error {
	reader := viper.New()
	reader.SetConfigFile(filepath)
	reader.SetConfigType("yml")

	if err := reader.ReadInConfig(); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", reader.AllSettings(), resolved)
	for key, value := range resolved {
		props.Set(key, value)
	}
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces every ${NAME:default} occurrence with the
// environment value, falling back to the default. Plain strings are returned as is.
func resolveEnvVariable(value string) string {
	if !strings.Contains(value, "${") {
		return value
	}
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

// Set overrides a property at runtime.
func Set(key string, value any) {
	props.Set(key, value)
}

func IsSet(key string) bool {
	return props.IsSet(key)
}

func Get(key string) any {
	return props.Get(key)
}

func GetString(key string) string {
	return props.GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is missing or empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := props.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return props.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return props.GetDuration(key)
}

// GetDurationOrDefault returns the property or defaultValue when it is missing or not positive.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := props.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return props.GetInt(key)
}

// GetIntOrDefault returns the property or defaultValue when it is missing or zero.
func GetIntOrDefault(key string, defaultValue int) int {
	if value := props.GetInt(key); value != 0 {
		return value
	}
	return defaultValue
}

func GetInt32(key string) int32 {
	return props.GetInt32(key)
}

func GetFloat64(key string) float64 {
	return props.GetFloat64(key)
}

// GetFloat64OrDefault returns the property or defaultValue when the key is not set.
func GetFloat64OrDefault(key string, defaultValue float64) float64 {
	if !props.IsSet(key) || props.GetString(key) == "" {
		return defaultValue
	}
	return props.GetFloat64(key)
}
