package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/davicafu/redisdb-exchange/internal/exchange/domain"
)

type Config struct {
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
	Channel         string        `mapstructure:"exchange_channel"`
	SenderID        string        `mapstructure:"sender_id"`
	HTTPPort        string        `mapstructure:"http_port"`
	LogLevel        string        `mapstructure:"log_level"`
	ConnectAttempts int           `mapstructure:"redis_connect_attempts"`
	ConnectDelay    time.Duration `mapstructure:"redis_connect_delay"`
}

// LoadConfig lee la configuración de variables de entorno, con valores por defecto.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("exchange_channel", domain.ExchangeChannel)
	v.SetDefault("sender_id", "") // vacío = se genera un UUID al arrancar
	v.SetDefault("http_port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("redis_connect_attempts", 5)
	v.SetDefault("redis_connect_delay", time.Second)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
