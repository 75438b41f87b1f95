package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	App struct {
		// BaseURL is used to build links embedded in outbound emails.
		BaseURL string `yaml:"base_url"`
	} `yaml:"app"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	// JWT.Secret must be stable across restarts or every issued token dies
	// with the process.
	JWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // local storage root
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // s3
		Region    string `yaml:"region"`     // s3
		AccessKey string `yaml:"access_key"` // s3
		SecretKey string `yaml:"secret_key"` // s3
		Endpoint  string `yaml:"endpoint"`   // s3-compatible endpoint (R2 etc)
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // bytes
		AllowedTypes []string `yaml:"allowed_types"` // MIME types
	} `yaml:"upload"`

	Razorpay struct {
		KeyID         string `yaml:"key_id"`
		KeySecret     string `yaml:"key_secret"`
		BaseURL       string `yaml:"base_url"`
		PremiumAmount int64  `yaml:"premium_amount"` // smallest currency unit (paise)
		Currency      string `yaml:"currency"`
	} `yaml:"razorpay"`
}

var AppConfig *Config

// LoadConfig populates AppConfig either from environment variables (when
// DATABASE_URL is set, the mode used by CI) or from the yaml file at
// CONFIG_PATH (default config/config.yaml).
func LoadConfig() {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTLHours = 24
		cfg.App.BaseURL = "http://localhost:8080"

		cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
		cfg.Email.SMTPPort = 587
		cfg.Email.FromEmail = "noreply@resumebuilder.local"
		cfg.Email.FromName = "Resume Builder"

		cfg.Storage.Type = "local"
		cfg.Storage.BasePath = "./uploads"
		cfg.Storage.BaseURL = "/api/files"

		cfg.Upload.MaxSize = 5 * 1024 * 1024
		cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

		cfg.Razorpay.KeyID = os.Getenv("RAZORPAY_KEY_ID")
		cfg.Razorpay.KeySecret = os.Getenv("RAZORPAY_KEY_SECRET")

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		log.Fatalf("Failed to open config file at %s: %v", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.TTLHours <= 0 {
		cfg.JWT.TTLHours = 24
	}
	if cfg.Razorpay.BaseURL == "" {
		cfg.Razorpay.BaseURL = "https://api.razorpay.com"
	}
	if cfg.Razorpay.PremiumAmount <= 0 {
		cfg.Razorpay.PremiumAmount = 99900
	}
	if cfg.Razorpay.Currency == "" {
		cfg.Razorpay.Currency = "INR"
	}
	if cfg.Upload.MaxSize <= 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}
	}
	if cfg.App.BaseURL == "" {
		cfg.App.BaseURL = "http://localhost:8080"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
