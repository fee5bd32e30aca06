package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_PORT    string = "2025"
	DEFAULT_DB_NAME string = "AuraDriveDB"
	DEV_SECRET      string = "dev-secret-change-in-production"
)

type Config struct {
	Port         string        `yaml:"port"`
	Env          string        `yaml:"env"`
	MongoURI     string        `yaml:"mongo_uri"`
	DBName       string        `yaml:"db_name"`
	TokenSecret  string        `yaml:"token_secret"`
	TokenExpiry  time.Duration `yaml:"token_expiry"`
	AllowOrigins string        `yaml:"allow_origins"`
	RateLimit    float64       `yaml:"rate_limit"`
	RateBurst    int           `yaml:"rate_burst"`
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func defaults() Config {
	return Config{
		Port:         DEFAULT_PORT,
		Env:          "development",
		DBName:       DEFAULT_DB_NAME,
		TokenSecret:  DEV_SECRET,
		TokenExpiry:  10 * time.Hour,
		AllowOrigins: "http://localhost:5173",
		RateLimit:    5,
		RateBurst:    10,
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path and finally the environment.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %v: %w", path, err)
		}
	}

	overrideString(&cfg.Port, "PORT")
	overrideString(&cfg.Env, "ENV")
	overrideString(&cfg.DBName, "DB_NAME")
	overrideString(&cfg.TokenSecret, "ACCESS_TOKEN_SECRET")
	overrideString(&cfg.AllowOrigins, "CLIENT_ORIGINS")
	overrideString(&cfg.MongoURI, "MONGODB_CONNSTRING")
	if cfg.MongoURI == "" {
		cfg.MongoURI = atlasURI()
	}

	if val, err := GetSecret("RATE_LIMIT"); err == nil {
		rps, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return Config{}, fmt.Errorf("RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = rps
	}
	if val, err := GetSecret("RATE_BURST"); err == nil {
		burst, err := strconv.Atoi(val)
		if err != nil {
			return Config{}, fmt.Errorf("RATE_BURST: %w", err)
		}
		cfg.RateBurst = burst
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MongoURI == "" {
		return errors.New("no MongoDB connection string: set MONGODB_CONNSTRING or DB_USER/DB_PASS/DB_HOST")
	}
	if c.IsProduction() && (c.TokenSecret == "" || c.TokenSecret == DEV_SECRET) {
		return errors.New("ACCESS_TOKEN_SECRET must be set in production environment")
	}
	if c.TokenSecret == "" {
		return errors.New("token secret is empty")
	}
	return nil
}

// atlasURI assembles an Atlas SRV connection string from separate
// credentials. Empty when any part is missing.
func atlasURI() string {
	user, userErr := GetSecret("DB_USER")
	pass, passErr := GetSecret("DB_PASS")
	host, hostErr := GetSecret("DB_HOST")
	if userErr != nil || passErr != nil || hostErr != nil {
		return ""
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func overrideString(field *string, key string) {
	if val, err := GetSecret(key); err == nil && val != "" {
		*field = val
	}
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}
