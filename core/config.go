package core

import (
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (local; default), TEST, QA, PROD
		Build    string
		AppName  string

		// Storage selects the persistence backend: memory | file | redis | postgres.
		Storage string
		DataDir string // file backend root

		// AuthDelay simulates the network latency of the mocked sign-in/sign-out.
		AuthDelay time.Duration

		// DefaultTeacherID is stamped on courses created without an active session.
		DefaultTeacherID string

		RollbarToken string

		Redis    RedisConfig
		Database DatabaseConfig
	}

	RedisConfig struct {
		Addr     string
		Password string
		DB       int
	}

	DatabaseConfig struct {
		Engine     string
		Host       string
		Port       string
		Name       string
		User       string
		Password   string
		DisableTLS bool
	}
)

func (c DatabaseConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "dev")
	conf.SetDefault("appName", "Alama")
	conf.SetDefault("storage", StorageFile)
	conf.SetDefault("dataDir", filepath.Join(Getwd(), "data"))
	conf.SetDefault("authDelay", 500*time.Millisecond)
	conf.SetDefault("defaultTeacherId", "1")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("redisAddr", "127.0.0.1:6379")
	conf.SetDefault("redisPassword", "")
	conf.SetDefault("redisDb", 0)
	conf.SetDefault("databaseEngine", "postgres")
	conf.SetDefault("databaseHost", "localhost")
	conf.SetDefault("databasePort", "5432")
	conf.SetDefault("databaseName", "alama")
	conf.SetDefault("databaseUser", "")
	conf.SetDefault("databasePassword", "")
	conf.SetDefault("databaseDisableTls", true)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:            conf.GetBool("debug"),
		TestMode:         env == "TEST",
		Env:              env,
		Build:            conf.GetString("build"),
		AppName:          conf.GetString("appName"),
		Storage:          conf.GetString("storage"),
		DataDir:          conf.GetString("dataDir"),
		AuthDelay:        conf.GetDuration("authDelay"),
		DefaultTeacherID: conf.GetString("defaultTeacherId"),
		RollbarToken:     conf.GetString("rollbarToken"),
		Redis: RedisConfig{
			Addr:     conf.GetString("redisAddr"),
			Password: conf.GetString("redisPassword"),
			DB:       conf.GetInt("redisDb"),
		},
		Database: DatabaseConfig{
			Engine:     conf.GetString("databaseEngine"),
			Host:       conf.GetString("databaseHost"),
			Port:       conf.GetString("databasePort"),
			Name:       conf.GetString("databaseName"),
			User:       conf.GetString("databaseUser"),
			Password:   conf.GetString("databasePassword"),
			DisableTLS: conf.GetBool("databaseDisableTls"),
		},
	}
}
