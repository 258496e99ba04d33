package config

import (
	"crypto/rand"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config собирает все настройки процесса из окружения.
type Config struct {
	Port          string
	DBPath        string
	SessionSecret []byte
}

// Load читает .env (если есть) и окружение; для всего есть дефолты,
// так что пустое окружение тоже рабочее.
func Load() Config {
	_ = godotenv.Load(".env", "../.env", "../../.env")

	cfg := Config{
		Port:   os.Getenv("APP_PORT"),
		DBPath: os.Getenv("DB_PATH"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.SessionSecret = []byte(secret)
	} else {
		// случайный секрет на процесс: после рестарта старые куки невалидны
		cfg.SessionSecret = make([]byte, 24)
		_, _ = rand.Read(cfg.SessionSecret)
	}
	return cfg
}

// defaultDBPath кладёт файл БД рядом с бинарником.
func defaultDBPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "market.db"
	}
	return filepath.Join(filepath.Dir(exe), "market.db")
}
