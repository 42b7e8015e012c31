package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// SlugPolicy controls what happens when two product names produce the same slug.
type SlugPolicy string

const (
	// SlugPolicySuffix disambiguates collisions with a numeric suffix ("-2", "-3", ...).
	SlugPolicySuffix SlugPolicy = "suffix"
	// SlugPolicyReject fails the write instead.
	SlugPolicyReject SlugPolicy = "reject"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBConfig    DBConfig

	AdminSecret string
	SlugPolicy  SlugPolicy

	// Idle cart sessions older than this many minutes are swept.
	CartTTLMinutes int

	Midtrans MidtransConfig
	Kafka    KafkaConfig
	SMTP     SMTPConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type MidtransConfig struct {
	ServerKey   string
	Environment string // "sandbox" or "production"
}

type KafkaConfig struct {
	BrokerAddress string
	Topic         string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func Load() *Config {
	godotenv.Load(".env")

	conf := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBConfig: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		AdminSecret:    os.Getenv("ADMIN_SECRET"),
		SlugPolicy:     SlugPolicy(getEnv("SLUG_COLLISION_POLICY", string(SlugPolicySuffix))),
		CartTTLMinutes: getEnvInt("CART_TTL_MINUTES", 120),
		Midtrans: MidtransConfig{
			ServerKey:   os.Getenv("MIDTRANS_SERVER_KEY"),
			Environment: getEnv("MIDTRANS_ENVIRONMENT", "sandbox"),
		},
		Kafka: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			Topic:         getEnv("BROKER_TOPIC", "keyking.orders"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
	}

	if conf.SlugPolicy != SlugPolicyReject {
		conf.SlugPolicy = SlugPolicySuffix
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
