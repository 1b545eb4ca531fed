package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL"`

	// Persistence: "memory", "redis" or "mongo".
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB  int    `mapstructure:"REDIS_STORE_DB"`
	RedisLockDB   int    `mapstructure:"REDIS_LOCK_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Slot reservation lock: "local" or "redis".
	LockBackend string        `mapstructure:"LOCK_BACKEND"`
	LockTTL     time.Duration `mapstructure:"LOCK_TTL"`

	// Stand-in for the latency of the future account API.
	SimulatedLatency time.Duration `mapstructure:"SIMULATED_LATENCY"`
	CallTimeout      time.Duration `mapstructure:"CALL_TIMEOUT"`

	RemindersEnabled           bool `mapstructure:"REMINDERS_ENABLED"`
	EnforceSingleActiveBooking bool `mapstructure:"ENFORCE_SINGLE_ACTIVE_BOOKING"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	for key, value := range Defaults() {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Defaults returns the default value of every known key.
func Defaults() map[string]any {
	return map[string]any{
		"APP_PORT":                      "8080",
		"ENV":                           "development",
		"LOG_LEVEL":                     "info",
		"MAX_REQUESTS_PER_MIN":          200,
		"JWT_SECRET":                    "haviaa-dev-secret",
		"SESSION_TTL":                   "24h",
		"STORE_BACKEND":                 "memory",
		"DATABASE_URL":                  "mongodb://localhost:27017",
		"DATABASE_NAME":                 "haviaa",
		"REDIS_ADDR":                    "localhost:6379",
		"REDIS_PASSWORD":                "",
		"REDIS_STORE_DB":                0,
		"REDIS_LOCK_DB":                 1,
		"REDIS_QUEUE_DB":                2,
		"LOCK_BACKEND":                  "local",
		"LOCK_TTL":                      "5s",
		"SIMULATED_LATENCY":             "1s",
		"CALL_TIMEOUT":                  "5s",
		"REMINDERS_ENABLED":             false,
		"ENFORCE_SINGLE_ACTIVE_BOOKING": true,
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
