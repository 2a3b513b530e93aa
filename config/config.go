// Package config exposes process configuration read from environment
// variables, optionally loaded from a .env file at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const name = "heritage-panel"

var version = "1.2.0"

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

// LoadEnvFile loads a .env file if present. Missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return name
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("PANEL_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("PANEL_DEBUG") == "true"
}

func GetListen() string {
	listen := os.Getenv("PANEL_LISTEN")
	if listen == "" {
		listen = "0.0.0.0"
	}
	return listen
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("PANEL_PORT"))
	if err != nil || port <= 0 {
		return 8080
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("PANEL_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/heritage-panel"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("PANEL_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetMediaFolder() string {
	mediaFolder := os.Getenv("PANEL_MEDIA_FOLDER")
	if mediaFolder == "" {
		mediaFolder = "media"
	}
	return mediaFolder
}

// GetJWTSecret returns the signing secret for access tokens. The
// fallback is for local development only.
func GetJWTSecret() []byte {
	secret := os.Getenv("PANEL_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

// GetTokenTTL returns the access token lifetime.
func GetTokenTTL() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("PANEL_TOKEN_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		minutes = 15
	}
	return time.Duration(minutes) * time.Minute
}

// GetSessionMaxAge returns how long a login session stays renewable,
// in minutes. Refresh requests past this age are rejected.
func GetSessionMaxAge() int {
	minutes, err := strconv.Atoi(os.Getenv("PANEL_SESSION_MAX_AGE_MINUTES"))
	if err != nil || minutes <= 0 {
		minutes = 720
	}
	return minutes
}

func GetSessionSecret() string {
	secret := os.Getenv("PANEL_SESSION_SECRET")
	if secret == "" {
		secret = "dev-session-secret"
	}
	return secret
}

func GetDefaultAdminEmail() string {
	email := os.Getenv("PANEL_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.org"
	}
	return email
}

func GetDefaultAdminPassword() string {
	password := os.Getenv("PANEL_ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}
	return password
}
