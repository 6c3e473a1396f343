package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	DataDir         string
	DatabaseURL     string
	InternalToken   string
	QuotePrefix     string
	LogoPath        string
	CORSAllowOrigin string
	BrasilAPIURL    string
	ViaCEPURL       string
}

func MustLoad() Config {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		DataDir:         env("DATA_DIR", "."),
		DatabaseURL:     env("DATABASE_URL", ""),
		InternalToken:   env("INTERNAL_TOKEN", ""),
		QuotePrefix:     env("QUOTE_PREFIX", "ORS"),
		LogoPath:        env("LOGO_PATH", "assets/logo.png"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		BrasilAPIURL:    env("BRASILAPI_URL", ""),
		ViaCEPURL:       env("VIACEP_URL", ""),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
