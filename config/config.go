// Package config exposes process configuration read from environment
// variables, optionally seeded from a .env file at startup.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "matraders-super-secret-jwt-key-2024"

// LoadEnv loads variables from a .env file if one exists. A missing file
// is not an error; the environment simply stays as-is.
func LoadEnv() {
	_ = godotenv.Load()
}

func IsDebug() bool {
	return os.Getenv("STORE_DEBUG") == "true"
}

// SecureCookies reports whether session cookies should carry the Secure
// flag. Enabled in production deployments behind TLS.
func SecureCookies() bool {
	return os.Getenv("STORE_SECURE_COOKIES") == "true"
}

func GetListenAddr() string {
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return addr
}

// GetDatabaseDSN returns the postgres DSN. Empty means the embedded
// sqlite database at GetDBPath is used instead.
func GetDatabaseDSN() string {
	return os.Getenv("DATABASE_DSN")
}

func GetDBPath() string {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "storefront.db"
	}
	return dbPath
}

func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = defaultJWTSecret
	}
	return secret
}

// IsDefaultJWTSecret reports whether the fallback signing secret is in
// use, so main can warn about it.
func IsDefaultJWTSecret() bool {
	return GetJWTSecret() == defaultJWTSecret
}

func GetUploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

func GetAdminEmail() string {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@matraders.com"
	}
	return email
}

func GetAdminPassword() string {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	return password
}
