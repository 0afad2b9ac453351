package api

import "time"

type ServerConfig struct {
	DB      DBConfig
	Redis   RedisConfig
	Sweeper SweeperConfig
	Lock    LockConfig
}

type DBConfig struct {
	User        string
	Password    string
	Host        string
	Port        int
	Database    string
	Schema      string
	AutoMigrate bool
}

// RedisConfig 未設定 Addr 時使用單機模式，拍賣鎖改用行程內的鎖且不發布事件
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string

	StreamKeys   RedisStreamKeys
	StreamMaxLen int64
}

type RedisStreamKeys struct {
	Events string
}

type SweeperConfig struct {
	Enabled  bool
	Interval time.Duration
}

type LockConfig struct {
	Expiry     time.Duration
	RetryDelay time.Duration
}
