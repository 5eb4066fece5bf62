package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// ErrMissingJWTSecret 未配置 JWT 密钥时启动失败，不允许静默回退默认值
var ErrMissingJWTSecret = errors.New("jwt secret is not configured (set jwt.secret or JWT_SECRET)")

func Load(configPath string) (*Config, error) {
	// 优先尝试读取 config.local.yaml（包含真实密钥，不提交到git）
	dir := filepath.Dir(configPath)
	localConfigPath := filepath.Join(dir, "config.local.yaml")

	// 检查 config.local.yaml 是否存在
	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("jwt.expire_hours", 168) // 7 天

	// 环境变量覆盖
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 兼容部署平台常用的环境变量名
	_ = viper.BindEnv("server.port", "PORT", "SERVER_PORT")
	_ = viper.BindEnv("server.host", "HOST", "SERVER_HOST")
	_ = viper.BindEnv("jwt.secret", "JWT_SECRET")
	_ = viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// DATABASE_URL 提供整串 DSN 时覆盖分字段数据库配置
	if dsn := viper.GetString("database.url"); dsn != "" {
		if err := applyDatabaseURL(&cfg.Database, dsn); err != nil {
			return nil, err
		}
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &cfg, nil
}

// applyDatabaseURL 解析 user:pass@tcp(host:port)/dbname 形式的 DSN
func applyDatabaseURL(cfg *DatabaseConfig, dsn string) error {
	parsed, err := mysql.ParseDSN(dsn)
	if err != nil {
		return fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	host, portStr, err := net.SplitHostPort(parsed.Addr)
	if err != nil {
		return fmt.Errorf("invalid DATABASE_URL address %q: %w", parsed.Addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid DATABASE_URL port %q: %w", portStr, err)
	}

	cfg.Host = host
	cfg.Port = port
	cfg.Username = parsed.User
	cfg.Password = parsed.Passwd
	cfg.Database = parsed.DBName
	return nil
}
