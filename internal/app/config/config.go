package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	NetAddr     string        `env:"RUN_ADDRESS"`
	GRPCAddr    string        `env:"GRPC_ADDRESS"`
	DBConnect   string        `env:"DATABASE_URI"`
	BrokerAddr  string        `env:"BROKER_ADDRESS"`
	BrokerTopic string        `env:"BROKER_TOPIC"`
	SecretKey   string        `env:"SECRET_KEY"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"`
	LogLevel    string        `env:"LOG_LEVEL"`
}

func InitConfig() (config Config) {
	flag.StringVar(&config.NetAddr, "a", "localhost:8080", "net address host:port")
	flag.StringVar(&config.GRPCAddr, "g", ":50051", "grpc listen address host:port")
	flag.StringVar(&config.DBConnect, "d", "", "database credentials in format: host=host port=port user=myuser password=xxxx dbname=mydb sslmode=disable")
	flag.StringVar(&config.BrokerAddr, "b", "localhost:9092", "message broker seed address")
	flag.StringVar(&config.BrokerTopic, "t", "cola_test", "message broker topic")
	flag.StringVar(&config.SecretKey, "s", "mi_clave_secreta", "token signing secret")
	flag.DurationVar(&config.TokenTTL, "e", 30*time.Minute, "token validity window")
	flag.StringVar(&config.LogLevel, "l", "info", "log level")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return
}
