package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	EmailDomain string `yaml:"email_domain" env-default:"ka-tch.com"`
	SeedInbox   bool   `yaml:"seed_inbox" env-default:"true"`
	HTTPServer  `yaml:"http_server"`
	Sessions    `yaml:"sessions"`
	Mail        `yaml:"mail"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Sessions struct {
	CookieName string        `yaml:"cookie_name" env-default:"session_id"`
	TTL        time.Duration `yaml:"ttl" env-default:"24h"`
	Redis      Redis         `yaml:"redis"`
}

// Redis is optional; when Addr is empty sessions stay in process memory.
type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

// Mail selects the outbound delivery transport: "none", "smtp" or "amqp".
type Mail struct {
	Transport string `yaml:"transport" env-default:"none"`
	SMTP      SMTP   `yaml:"smtp"`
	AMQP      AMQP   `yaml:"amqp"`
}

type SMTP struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" env-default:"587"`
	Username string `yaml:"username"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
}

type AMQP struct {
	URL       string `yaml:"url" env:"AMQP_URL"`
	QueueName string `yaml:"queue_name" env-default:"outbound_mail"`
}

func MustLoad(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("Config file does not exist" + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("Failed to read config" + err.Error())
	}

	return &cfg
}
