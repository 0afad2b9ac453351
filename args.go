package main

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bidhouse/api"
)

func ParseArgs() Args {
	// server config
	pflag.String("server-url", "0.0.0.0:8080", "")
	pflag.Duration("shutdown-timeout", 10*time.Second, "")

	// db config
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")
	pflag.String("db-schema", "", "")
	pflag.Bool("db-auto-migrate", false, "")

	// redis config
	pflag.String("redis-addr", "", "")
	pflag.String("redis-password", "", "")
	pflag.Int("redis-db", 15, "")
	pflag.String("redis-key-prefix", "bidhouse:", "")

	// redis stream keys
	pflag.String("redis-stream-key-for-events", "auction-events", "")
	pflag.Int64("redis-stream-max-len", 10000, "")

	// sweeper config
	pflag.Bool("sweeper-enabled", true, "")
	pflag.Duration("sweeper-interval", 30*time.Second, "")

	// lock config
	pflag.Duration("lock-expiry", 8*time.Second, "")
	pflag.Duration("lock-retry-delay", 100*time.Millisecond, "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("BIDHOUSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// initial arguments
	return Args{
		ServerURL:       viper.GetString("server-url"),
		ShutdownTimeout: viper.GetDuration("shutdown-timeout"),
		ServerConfig: api.ServerConfig{
			DB: api.DBConfig{
				User:        viper.GetString("db-user"),
				Password:    viper.GetString("db-password"),
				Host:        viper.GetString("db-host"),
				Port:        viper.GetInt("db-port"),
				Database:    viper.GetString("db-database"),
				Schema:      viper.GetString("db-schema"),
				AutoMigrate: viper.GetBool("db-auto-migrate"),
			},
			Redis: api.RedisConfig{
				Addr:      viper.GetString("redis-addr"),
				Password:  viper.GetString("redis-password"),
				DB:        viper.GetInt("redis-db"),
				KeyPrefix: viper.GetString("redis-key-prefix"),
				StreamKeys: api.RedisStreamKeys{
					Events: viper.GetString("redis-stream-key-for-events"),
				},
				StreamMaxLen: viper.GetInt64("redis-stream-max-len"),
			},
			Sweeper: api.SweeperConfig{
				Enabled:  viper.GetBool("sweeper-enabled"),
				Interval: viper.GetDuration("sweeper-interval"),
			},
			Lock: api.LockConfig{
				Expiry:     viper.GetDuration("lock-expiry"),
				RetryDelay: viper.GetDuration("lock-retry-delay"),
			},
		},
	}
}

type Args struct {
	ServerURL       string
	ShutdownTimeout time.Duration
	ServerConfig    api.ServerConfig
}

func (args Args) Validate() bool {
	return args.ServerURL != "" && args.ServerConfig.DB.Host != "" && args.ServerConfig.DB.Database != ""
}
