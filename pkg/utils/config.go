package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret     string
	JWTIssuer     string
	JWTDuration   time.Duration
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("MENUHUB_JWT_SECRET")
	if secret == "" {
		// dev default (change for production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("MENUHUB_JWT_ISSUER")
	if issuer == "" {
		issuer = "menuhub"
	}

	dur := 24 * time.Hour
	if ttl := os.Getenv("MENUHUB_JWT_TTL_HOURS"); ttl != "" {
		if h, err := strconv.Atoi(ttl); err == nil && h > 0 {
			dur = time.Duration(h) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:     secret,
		JWTIssuer:     issuer,
		JWTDuration:   dur,
		AdminUsername: getEnv("MENUHUB_ADMIN_USER", "admin"),
		AdminEmail:    getEnv("MENUHUB_ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("MENUHUB_ADMIN_PASSWORD", "change-me"),
	}
}

type TranslateConfig struct {
	BaseURL      string
	Timeout      time.Duration
	PrimaryTag   string // language the operator usually types in
	SecondaryTag string // language derived from the primary
}

func LoadTranslateConfig() TranslateConfig {
	timeout := 5 * time.Second
	if s := os.Getenv("MENUHUB_TRANSLATE_TIMEOUT_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	return TranslateConfig{
		BaseURL:      getEnv("MENUHUB_TRANSLATE_URL", "https://api.mymemory.translated.net/get"),
		Timeout:      timeout,
		PrimaryTag:   getEnv("MENUHUB_LANG_PRIMARY", "en"),
		SecondaryTag: getEnv("MENUHUB_LANG_SECONDARY", "ar"),
	}
}

type ServerConfig struct {
	Addr      string
	UploadDir string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Addr:      getEnv("MENUHUB_HTTP_ADDR", ":8080"),
		UploadDir: getEnv("MENUHUB_UPLOAD_DIR", "static/uploads"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
