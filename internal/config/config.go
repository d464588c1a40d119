package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Routing  RoutingConfig
	Pedidos  PedidosConfig
	Handoff  HandoffConfig
	Planner  PlannerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RoutingConfig points the route client at a routing backend.
// BaseURL may reference this service itself when the embedded planner is enabled.
type RoutingConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// PedidosConfig selects the pedido collaborator adapter: "http" talks to the
// external dashboard backend, "postgres" reads the pedidos table directly.
type PedidosConfig struct {
	Adapter string
	BaseURL string
	Timeout time.Duration
}

type HandoffConfig struct {
	Key         string
	SettleDelay time.Duration
}

type PlannerConfig struct {
	Enabled        bool
	SpeedKmh       float64
	StepMeters     float64
	DistCoefPerKm  float64
	BaseTimeCoef   float64
	ThursdayUplift float64
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// The .env file is optional; env vars alone are enough
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Routing: RoutingConfig{
			BaseURL:        viper.GetString("ROUTING_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("ROUTING_REQUEST_TIMEOUT")) * time.Second,
		},
		Pedidos: PedidosConfig{
			Adapter: viper.GetString("PEDIDOS_ADAPTER"),
			BaseURL: viper.GetString("PEDIDOS_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("PEDIDOS_REQUEST_TIMEOUT")) * time.Second,
		},
		Handoff: HandoffConfig{
			Key:         viper.GetString("HANDOFF_KEY"),
			SettleDelay: time.Duration(viper.GetInt("HANDOFF_SETTLE_DELAY_MS")) * time.Millisecond,
		},
		Planner: PlannerConfig{
			Enabled:        viper.GetBool("PLANNER_ENABLED"),
			SpeedKmh:       viper.GetFloat64("PLANNER_SPEED_KMH"),
			StepMeters:     viper.GetFloat64("PLANNER_STEP_METERS"),
			DistCoefPerKm:  viper.GetFloat64("PLANNER_DIST_COEF_PER_KM"),
			BaseTimeCoef:   viper.GetFloat64("PLANNER_BASE_TIME_COEF"),
			ThursdayUplift: viper.GetFloat64("PLANNER_THURSDAY_UPLIFT_MIN"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Routing.RequestTimeout == 0 {
		cfg.Routing.RequestTimeout = 30 * time.Second
	}
	if cfg.Pedidos.Adapter == "" {
		cfg.Pedidos.Adapter = "http"
	}
	if cfg.Pedidos.Timeout == 0 {
		cfg.Pedidos.Timeout = 10 * time.Second
	}
	if cfg.Handoff.Key == "" {
		cfg.Handoff.Key = "map:handoff"
	}
	if cfg.Handoff.SettleDelay == 0 {
		cfg.Handoff.SettleDelay = 600 * time.Millisecond
	}
	if cfg.Planner.SpeedKmh == 0 {
		cfg.Planner.SpeedKmh = 30
	}
	if cfg.Planner.StepMeters == 0 {
		cfg.Planner.StepMeters = 250
	}
	if cfg.Planner.BaseTimeCoef == 0 {
		cfg.Planner.BaseTimeCoef = 1.1
	}
	if cfg.Planner.DistCoefPerKm == 0 {
		cfg.Planner.DistCoefPerKm = 0.25
	}
	if cfg.Planner.ThursdayUplift == 0 {
		cfg.Planner.ThursdayUplift = 4
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
