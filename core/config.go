package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host            string
		Port            string
		ShutdownTimeout time.Duration
	}

	// StorageConfig selects the persistence backend: "localdisk" keeps the
	// collections in memory and mirrors them to JSON files (offline mode);
	// "mongodb" talks to the remote document store.
	StorageConfig struct {
		Engine  string
		DataDir string

		MongoURI     string
		MongoName    string
		MongoTimeout time.Duration
	}

	Config struct {
		AppName  string
		Env      string
		Debug    bool
		TestMode bool
		Build    string
		WorkDir  string

		Server  ServerConfig
		Storage StorageConfig

		SendgridAPIKey   string
		DefaultFromEmail mail.Address
		FeedbackEmail    mail.Address

		RollbarToken string
	}
)

func (c ServerConfig) Address() string { return c.Host + ":" + c.Port }

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Pravah")
	v.SetDefault("build", "dev")
	v.SetDefault("serverHost", "0.0.0.0")
	v.SetDefault("serverPort", "8000")
	v.SetDefault("shutdownTimeout", 5*time.Second)
	v.SetDefault("storageEngine", "localdisk")
	v.SetDefault("storageDataDir", filepath.Join(Getwd(), "data"))
	v.SetDefault("mongoUri", "mongodb://localhost:27017")
	v.SetDefault("mongoName", "pravah")
	v.SetDefault("mongoTimeout", 5*time.Second)
	v.SetDefault("defaultFromEmail", "noreply@pravahngo.org")
	v.SetDefault("feedbackEmail", "coordinators@pravahngo.org")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:  v.GetString("appName"),
		Env:      env,
		Debug:    v.GetBool("debug"),
		TestMode: testMode,
		Build:    v.GetString("build"),
		WorkDir:  Getwd(),
		Server: ServerConfig{
			Host:            v.GetString("serverHost"),
			Port:            v.GetString("serverPort"),
			ShutdownTimeout: v.GetDuration("shutdownTimeout"),
		},
		Storage: StorageConfig{
			Engine:       v.GetString("storageEngine"),
			DataDir:      v.GetString("storageDataDir"),
			MongoURI:     v.GetString("mongoUri"),
			MongoName:    v.GetString("mongoName"),
			MongoTimeout: v.GetDuration("mongoTimeout"),
		},
		SendgridAPIKey:   v.GetString("sendgridApiKey"),
		DefaultFromEmail: mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		FeedbackEmail:    mail.Address{Address: v.GetString("feedbackEmail")},
		RollbarToken:     v.GetString("rollbarToken"),
	}
}
