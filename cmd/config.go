package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"mealflow/internal/adapters/out/postgres"
	"mealflow/internal/adapters/out/rabbitmq"
	"mealflow/internal/adapters/out/redis"
	"mealflow/internal/core/application/usecases/commands"
	"mealflow/internal/core/domain/services"
	"mealflow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "MEALFLOW"

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	DB       DBConfig       `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
	Log      LogConfig      `mapstructure:"log"`
	Policy   PolicyConfig   `mapstructure:"policy"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
}

type HTTPConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

func (c DBConfig) Connection() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:         c.Host,
		Port:         c.Port,
		User:         c.User,
		Password:     c.Password,
		DBName:       c.Name,
		SSLMode:      c.SSLMode,
		MaxOpenConns: c.MaxOpenConns,
		MaxIdleConns: c.MaxIdleConns,
	}
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

func (c RedisConfig) Cache() redis.Config {
	return redis.Config{
		Enabled:  c.Enabled,
		Host:     c.Host,
		Port:     c.Port,
		Password: c.Password,
		DB:       c.DB,
		TTL:      c.TTL,
	}
}

// RabbitMQConfig selects the push transport. An empty URL logs pushes instead
// of publishing them.
type RabbitMQConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type PolicyConfig struct {
	ConfirmationCodeLength int           `mapstructure:"confirmation_code_length"`
	AutoApproveAge         time.Duration `mapstructure:"auto_approve_age"`
	AutoApproveBatch       int           `mapstructure:"auto_approve_batch"`
	FlatEarnings           string        `mapstructure:"flat_earnings"`
	ClusterMinSize         int           `mapstructure:"cluster_min_size"`
	ClusterSavingsRatio    float64       `mapstructure:"cluster_savings_ratio"`
	ClusterTimezone        string        `mapstructure:"cluster_timezone"`
	RetryAttempts          int           `mapstructure:"retry_attempts"`
	AverageSpeedKmh        float64       `mapstructure:"average_speed_kmh"`
	HandlingTime           time.Duration `mapstructure:"handling_time"`
	NotificationTimeout    time.Duration `mapstructure:"notification_timeout"`
}

type JobsConfig struct {
	Enabled                bool          `mapstructure:"enabled"`
	ReassignmentAgingSpec  string        `mapstructure:"reassignment_aging_spec"`
	DailyEarningsResetSpec string        `mapstructure:"daily_earnings_reset_spec"`
	Timeout                time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "mealflow")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", time.Minute)

	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", rabbitmq.DefaultExchange)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("policy.confirmation_code_length", services.DefaultCodeLength)
	v.SetDefault("policy.auto_approve_age", commands.DefaultAutoApproveAge)
	v.SetDefault("policy.auto_approve_batch", commands.DefaultAutoApproveBatch)
	v.SetDefault("policy.flat_earnings", services.DefaultFlatEarnings.String())
	v.SetDefault("policy.cluster_min_size", services.DefaultClusterMinSize)
	v.SetDefault("policy.cluster_savings_ratio", services.DefaultClusterSavingsRatio)
	v.SetDefault("policy.cluster_timezone", "Africa/Lagos")
	v.SetDefault("policy.retry_attempts", commands.DefaultRetryAttempts)
	v.SetDefault("policy.average_speed_kmh", 25.0)
	v.SetDefault("policy.handling_time", 10*time.Minute)
	v.SetDefault("policy.notification_timeout", 10*time.Second)

	v.SetDefault("jobs.enabled", true)
	v.SetDefault("jobs.reassignment_aging_spec", jobs.DefaultReassignmentAgingSpec)
	v.SetDefault("jobs.daily_earnings_reset_spec", jobs.DefaultDailyEarningsResetSpec)
	v.SetDefault("jobs.timeout", 5*time.Minute)
}

// LoadConfig reads an optional .env file, an optional config file and then
// MEALFLOW_* environment variables, in increasing precedence. Nested keys
// map to variables with dots replaced by underscores, so db.host is read
// from MEALFLOW_DB_HOST.
func LoadConfig(configFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
