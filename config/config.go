package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// 支持的数据库驱动
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config 应用配置结构
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	Realtime RealtimeConfig
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	Path        string // sqlite 数据库文件
	AutoMigrate bool
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string
	Mode string
}

// LogConfig 日志配置
type LogConfig struct {
	Level string
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string
}

// RealtimeConfig 实时推送配置
type RealtimeConfig struct {
	Enabled bool
}

// 配置键与环境变量的对应关系
var envBindings = map[string]string{
	"database.driver":       "DB_DRIVER",
	"database.host":         "DB_HOST",
	"database.port":         "DB_PORT",
	"database.user":         "DB_USER",
	"database.password":     "DB_PASSWORD",
	"database.name":         "DB_NAME",
	"database.path":         "DB_PATH",
	"database.auto_migrate": "DB_AUTO_MIGRATE",
	"server.port":           "PORT",
	"server.mode":           "GIN_MODE",
	"log.level":             "LOG_LEVEL",
	"cors.allow_origins":    "CORS_ORIGINS",
	"realtime.enabled":      "REALTIME_ENABLED",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "concessionaria")
	v.SetDefault("database.path", "dealership.db")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("log.level", "info")
	v.SetDefault("cors.allow_origins", []string{"http://localhost:5173"})
	v.SetDefault("realtime.enabled", true)
}

// Load 加载配置：默认值 < 配置文件 < 环境变量
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:      strings.ToLower(v.GetString("database.driver")),
			Host:        v.GetString("database.host"),
			Port:        v.GetString("database.port"),
			User:        v.GetString("database.user"),
			Password:    v.GetString("database.password"),
			Name:        v.GetString("database.name"),
			Path:        v.GetString("database.path"),
			AutoMigrate: v.GetBool("database.auto_migrate"),
		},
		Server: ServerConfig{
			Port: v.GetString("server.port"),
			Mode: v.GetString("server.mode"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("log.level")),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(v.GetStringSlice("cors.allow_origins")),
		},
		Realtime: RealtimeConfig{
			Enabled: v.GetBool("realtime.enabled"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查配置是否可用
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverMySQL, DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the %s driver", c.Database.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Server.Port == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

// Addr 返回监听地址
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// DSN 根据驱动生成连接串
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User, d.Password, d.Host, d.portOr("3306"), d.Name)
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			d.Host, d.portOr("5432"), d.User, d.Password, d.Name)
	case DriverSQLite:
		return d.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	default:
		return ""
	}
}

func (d DatabaseConfig) portOr(fallback string) string {
	if d.Port == "" {
		return fallback
	}
	return d.Port
}

// splitList 兼容环境变量中逗号分隔的写法
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
