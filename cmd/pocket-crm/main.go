package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"pocket-crm/internal/api"
	"pocket-crm/internal/models"
)

var customVars models.EnvParams

func main() {
	_ = godotenv.Load()
	customVars.JWTSecret = os.Getenv("JWT_SECRET")
	customVars.PasswordHash = os.Getenv("CRM_PASSWORD_HASH")
	customVars.ApiPort = os.Getenv("API_PORT")
	customVars.DataPath = os.Getenv("DATA_STORAGE_PATH")
	customVars.CertFilePath = os.Getenv("CERT_FILE_PATH")
	customVars.KeyFilePath = os.Getenv("KEY_FILE_PATH")

	if customVars.DataPath == "" {
		log.Println("Data storage path env variable missing, trying defaults")
		customVars.DataPath = models.DefaultDataPath
	}
	customVars.DbPath = filepath.Join(customVars.DataPath, "database", "pocket-crm.db")
	if customVars.ApiPort == "" {
		customVars.ApiPort = models.DefaultApiPort
	}
	if customVars.PasswordHash != "" && customVars.JWTSecret == "" {
		log.Fatalln("JWT_SECRET must be set when CRM_PASSWORD_HASH is configured")
	}
	if customVars.CertFilePath != "" || customVars.KeyFilePath != "" {
		_, certErr := os.Stat(customVars.CertFilePath)
		_, keyErr := os.Stat(customVars.KeyFilePath)
		if certErr != nil || keyErr != nil {
			log.Fatalln("Key and cert files do not exist")
		}
	}

	serverApi := api.NewApi(customVars)
	serverApi.Start()
}
