package config

import "time"

type Config struct {
	Environment Environment
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	JWT JWT `envPrefix:"JWT_"`
	FCM FCM `envPrefix:"FCM_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type JWT struct {
	Secret           string        `env:"SECRET"`
	RefreshSecret    string        `env:"REFRESH_SECRET"`
	ExpiresIn        time.Duration `env:"EXPIRES_IN" envDefault:"15m"`
	RefreshExpiresIn time.Duration `env:"REFRESH_EXPIRES_IN" envDefault:"168h"`
}

type FCM struct {
	ServerKey string `env:"SERVER_KEY"`
	Endpoint  string `env:"ENDPOINT" envDefault:"https://fcm.googleapis.com/fcm/send"`
}
