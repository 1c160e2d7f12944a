package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	Environment   string
	MongoDBConfig MongoDBConfig
	RedisConfig   RedisConfig
	JWTSecret     string
	TracingConfig TracingConfig
	AdminConfig   AdminConfig
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type RedisConfig struct {
	Host string
	Port string
}

type TracingConfig struct {
	CollectorHost string
}

// AdminConfig seeds the first operator account so a fresh deployment
// has someone able to log into the admin console.
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		RedisConfig: RedisConfig{
			Host: os.Getenv("REDIS_HOST"),
			Port: os.Getenv("REDIS_PORT"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		AdminConfig: AdminConfig{
			Name:     os.Getenv("ADMIN_NAME"),
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "guitar_shop"
	}

	return &conf
}
