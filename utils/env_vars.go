package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type envTypes interface {
	string | int | bool
}

// GetEnv returns the value of the environment variable, or defaultValue when
// it is unset or empty.
func GetEnv[T envTypes](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	return parseEnv[T](envVar, envValue)
}

// GetRequiredEnv exits the process when the environment variable is unset.
func GetRequiredEnv[T envTypes](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	return parseEnv[T](envVar, envValue)
}

func parseEnv[T envTypes](envVar, envValue string) T {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(envValue).(T)
	case int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s is not valid: %q is not an integer", envVar, envValue))
		}
		return any(intValue).(T)
	case bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s is not valid: %q is not a boolean", envVar, envValue))
		}
		return any(boolValue).(T)
	default:
		panic(fmt.Sprintf("unsupported type for environment variable %s", envVar))
	}
}
