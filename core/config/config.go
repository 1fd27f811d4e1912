package config

import (
	"fmt"
	"sync"

	"interview-planner/core/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type AuthConfig struct {
	TokenSecret string
}

type LogConfig struct {
	Level string
}

type StorageConfig struct {
	// Backend selects the document backend: file, postgres, redis or s3.
	Backend string
	// Handle is the logical document identifier the backend is keyed by
	// (file path, table row key, redis key or object key).
	Handle string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type ScheduleConfig struct {
	// EndTime is the daily cutoff for slot generation ("HH:MM").
	EndTime string
}

type ExportConfig struct {
	// Target selects where report exports land: file or s3.
	Target string
	Dir    string
}

type WorkerConfig struct {
	Enabled     bool
	Concurrency int
}

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Log      LogConfig
	Storage  StorageConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	S3       S3Config
	Schedule ScheduleConfig
	Export   ExportConfig
	Worker   WorkerConfig
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (if present) and environment variables into the process
// config. It is called once from server startup.
func Load() (*Config, error) {
	// Missing .env is fine, real deployments use the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AUTH_TOKEN_SECRET", "")
	v.SetDefault("STORAGE_BACKEND", constants.StorageBackendFile)
	v.SetDefault("STORAGE_HANDLE", "data/interview_data.json")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_DB", "interview_planner")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("SCHEDULE_END_TIME", constants.DefaultScheduleEndTime)
	v.SetDefault("EXPORT_TARGET", "file")
	v.SetDefault("EXPORT_DIR", "data/exports")
	v.SetDefault("WORKER_ENABLED", false)
	v.SetDefault("WORKER_CONCURRENCY", constants.DefaultWorkerConcurrency)

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Auth: AuthConfig{
			TokenSecret: v.GetString("AUTH_TOKEN_SECRET"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Storage: StorageConfig{
			Backend: v.GetString("STORAGE_BACKEND"),
			Handle:  v.GetString("STORAGE_HANDLE"),
		},
		Postgres: PostgresConfig{
			Host:     v.GetString("POSTGRES_HOST"),
			Port:     v.GetInt("POSTGRES_PORT"),
			User:     v.GetString("POSTGRES_USER"),
			Password: v.GetString("POSTGRES_PASSWORD"),
			DBName:   v.GetString("POSTGRES_DB"),
			SSLMode:  v.GetString("POSTGRES_SSLMODE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		S3: S3Config{
			Region:          v.GetString("S3_REGION"),
			Bucket:          v.GetString("S3_BUCKET"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
			Endpoint:        v.GetString("S3_ENDPOINT"),
		},
		Schedule: ScheduleConfig{
			EndTime: v.GetString("SCHEDULE_END_TIME"),
		},
		Export: ExportConfig{
			Target: v.GetString("EXPORT_TARGET"),
			Dir:    v.GetString("EXPORT_DIR"),
		},
		Worker: WorkerConfig{
			Enabled:     v.GetBool("WORKER_ENABLED"),
			Concurrency: v.GetInt("WORKER_CONCURRENCY"),
		},
	}

	switch cfg.Storage.Backend {
	case constants.StorageBackendFile, constants.StorageBackendPostgres,
		constants.StorageBackendRedis, constants.StorageBackendS3:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

// Get returns the loaded config. Panics when called before Load.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config: Get called before Load")
	}
	return instance
}

// GetSafe returns the loaded config and whether Load has run.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}

// Set replaces the process config. Intended for tests.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}
