package config

import (
	"fmt"
	"os"
)

// Manager provides configuration management functionality
type Manager interface {
	GetString(key string) (string, error)
	GetStringWithDefault(key, defaultValue string) string
	GetBool(key string) bool
}

// EnvManager reads configuration from the process environment. The CLI loads
// a .env file before constructing one, so both sources look the same here.
type EnvManager struct{}

// NewManager creates a new environment-backed config manager
func NewManager() Manager {
	return &EnvManager{}
}

// GetString gets a configuration value by key, returns error if not found
func (m *EnvManager) GetString(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("configuration key %s not found", key)
	}
	return value, nil
}

// GetStringWithDefault gets a configuration value by key, returns default if not found
func (m *EnvManager) GetStringWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetBool reports whether the key is set to a truthy value.
func (m *EnvManager) GetBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	}
	return false
}
