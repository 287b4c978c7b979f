package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env     string
	Storage StorageConfig
}

type StorageConfig struct {
	CatalogFile string
	CartFile    string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Env: getEnv("ENV", "development"),
		Storage: StorageConfig{
			CatalogFile: getEnv("CATALOG_FILE", "products.json"),
			CartFile:    getEnv("CART_FILE", "cart.json"),
		},
	}

	log.Printf("Config loaded: env=%s, catalog=%s, cart=%s",
		cfg.Env, cfg.Storage.CatalogFile, cfg.Storage.CartFile)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
