// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	encryptionDomain "github.com/allisson/cardshield/internal/encryption/domain"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string

	// KeyStoreURI is the gocloud secrets keeper URI used to seal staged public keys
	// (e.g., "base64key://...", "awskms://...", "hashivault://..."). Empty keeps
	// keys in a plain in-memory store.
	KeyStoreURI string

	// AppIdentifier names the merchant application sending payment requests.
	AppIdentifier string
	// SDKIdentifier names the client library and its version.
	SDKIdentifier string
	// SDKCreator names the party that built the client library.
	SDKCreator string
	// PlatformIdentifier describes the operating system of the device.
	PlatformIdentifier string
	// ScreenSize is the device screen resolution.
	ScreenSize string
	// DeviceBrand is the device manufacturer.
	DeviceBrand string
	// DeviceType is the device model or class.
	DeviceType string
	// IPAddress is the device IP address. Optional.
	IPAddress string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "cardshield"),

		// Key store
		KeyStoreURI: env.GetString("KEYSTORE_URI", ""),

		// Device metadata
		AppIdentifier:      env.GetString("APP_IDENTIFIER", "cardshield-cli"),
		SDKIdentifier:      env.GetString("SDK_IDENTIFIER", "GoClientSDK/v1.0.0"),
		SDKCreator:         env.GetString("SDK_CREATOR", "cardshield"),
		PlatformIdentifier: env.GetString("PLATFORM_IDENTIFIER", defaultPlatform()),
		ScreenSize:         env.GetString("SCREEN_SIZE", "0x0"),
		DeviceBrand:        env.GetString("DEVICE_BRAND", "generic"),
		DeviceType:         env.GetString("DEVICE_TYPE", "server"),
		IPAddress:          env.GetString("IP_ADDRESS", ""),
	}
}

// DeviceMetadata returns the device metadata snapshot described by the configuration.
func (c *Config) DeviceMetadata() encryptionDomain.DeviceMetadata {
	return encryptionDomain.DeviceMetadata{
		AppIdentifier:      c.AppIdentifier,
		SDKIdentifier:      c.SDKIdentifier,
		SDKCreator:         c.SDKCreator,
		PlatformIdentifier: c.PlatformIdentifier,
		ScreenSize:         c.ScreenSize,
		DeviceBrand:        c.DeviceBrand,
		DeviceType:         c.DeviceType,
		IPAddress:          c.IPAddress,
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
