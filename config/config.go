package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config trả về giá trị env theo key, load .env một lần
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Print("Error loading .env file")
	}
	return os.Getenv(key)
}
