package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string
	AppEnv     string

	SessionKey string
	JWTSecret  string
	CSRFKey    string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),
		SessionKey: os.Getenv("SESSION_KEY"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		CSRFKey:    os.Getenv("CSRF_KEY"),
	}
}

var LoadENV = LoadEnv()

func (e ENV) IsProduction() bool {
	return e.AppEnv == "production"
}
