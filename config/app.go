package config

type App struct {
	Port        string `env:"APP_PORT" default:"9090"`
	GatewayPort string `env:"GATEWAY_PORT" default:"8080"`
	ServerURL   string `env:"SHAREIT_SERVER_URL" default:"http://localhost:9090"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	Env         string `env:"APP_ENV" default:"dev"`
}
