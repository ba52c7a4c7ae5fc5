package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

// LogFile 文件输出（lumberjack 轮转），默认只打 stdout
type LogFile struct {
	Enable     bool   `mapstructure:"enable"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile `mapstructure:"file"`
}

type DB struct {
	Driver             string // postgres / mysql
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	ConnMaxIdleTimeMin int
	ConnectTimeoutSec  int
	AutoMigrate        bool
	LogLevel           string
}

// Upload 托管文件服务（UploadThing）接入参数
type Upload struct {
	APIKey     string `mapstructure:"api_key"`
	AppID      string `mapstructure:"app_id"`
	ImageMaxMB int    `mapstructure:"image_max_mb"`
	AudioMaxMB int    `mapstructure:"audio_max_mb"`
}

type Config struct {
	App    App
	Log    Log
	DB     DB
	Upload Upload `mapstructure:"upload"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	applyDefaults(&c)
	return &c
}

func applyDefaults(c *Config) {
	if c.DB.MaxOpenConns <= 0 {
		c.DB.MaxOpenConns = 20
	}
	if c.DB.MaxIdleConns <= 0 {
		c.DB.MaxIdleConns = 5
	}
	if c.DB.ConnectTimeoutSec <= 0 {
		c.DB.ConnectTimeoutSec = 5
	}
	if c.Log.File.Enable && c.Log.File.Path == "" {
		c.Log.File.Path = "logs/app.log"
	}
	if c.Upload.ImageMaxMB <= 0 {
		c.Upload.ImageMaxMB = 4
	}
	if c.Upload.AudioMaxMB <= 0 {
		c.Upload.AudioMaxMB = 8
	}
}
