package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string

	// first-run seeding (optional)
	SeedOrgName       string
	SeedSpecialNumber string
	SeedStaffName     string
	SeedStaffEmail    string
	SeedStaffPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBSource: getEnv("DB_SOURCE", "yumm.db"),
		Port:     getEnv("PORT", "8000"),

		SeedOrgName:       os.Getenv("SEED_ORG_NAME"),
		SeedSpecialNumber: os.Getenv("SEED_ORG_SPECIAL_NUMBER"),
		SeedStaffName:     getEnv("SEED_STAFF_NAME", "Admin"),
		SeedStaffEmail:    os.Getenv("SEED_STAFF_EMAIL"),
		SeedStaffPassword: os.Getenv("SEED_STAFF_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
