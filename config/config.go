package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DatasetPath  string
	CriteriaPath string

	ReportPath string
	CSVPath    string
	SQLitePath string

	Verbose bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DatasetPath:  getEnv("LISTINGS_CSV_PATH", "./data/listings.csv"),
		CriteriaPath: getEnv("CRITERIA_PATH", ""),

		ReportPath: getEnv("REPORT_OUTPUT_PATH", "./output/report.json"),
		CSVPath:    getEnv("CSV_OUTPUT_PATH", "./output/filtered_listings.csv"),
		SQLitePath: getEnv("SQLITE_OUTPUT_PATH", "./output/listings.db"),

		Verbose: getEnvBool("VERBOSE", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
