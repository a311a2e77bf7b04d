package config

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// 註冊到mysql driver的TLS設定名稱
const tlsConfigName = "custom-ca"

type ServerConfig struct {
	Port string `yaml:"port"`
	// 是否將資料庫錯誤訊息原樣回傳給客戶端
	ExposeErrors bool   `yaml:"expose_errors"`
	GinMode      string `yaml:"gin_mode"`
	// 反向代理位址，決定是否採用X-Forwarded-For
	TrustedProxies []string `yaml:"trusted_proxies"`
}

type DatabaseConfig struct {
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	Database        string        `yaml:"database"`
	CAPath          string        `yaml:"ca_path"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogLevel        string        `yaml:"log_level"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
	// 商品列表快取的保存時間
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:         "5001",
			ExposeErrors: true,
			GinMode:      "release",
		},
		Database: DatabaseConfig{
			Port:     "4000",
			LogLevel: "warn",
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			CacheTTL: 10 * time.Minute,
		},
	}
}

// LoadConfig 讀取yaml設定檔後再套用環境變數，設定檔不存在時只使用預設值與環境變數
func LoadConfig(filename string) (Config, error) {
	config := Default()

	file, err := os.Open(filename)
	switch {
	case err == nil:
		defer file.Close()
		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
			return config, fmt.Errorf("decode %s: %w", filename, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("設定檔%s不存在，使用預設值與環境變數\n", filename)
	default:
		return config, err
	}

	if err := config.applyEnv(os.LookupEnv); err != nil {
		return config, err
	}
	return config, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	setString := func(key string, target *string) {
		if v, ok := lookup(key); ok && v != "" {
			*target = v
		}
	}
	setBool := func(key string, target *bool) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*target = b
		return nil
	}

	setString("PORT", &c.Server.Port)
	setString("GIN_MODE", &c.Server.GinMode)
	if err := setBool("EXPOSE_ERRORS", &c.Server.ExposeErrors); err != nil {
		return err
	}

	setString("DB_HOST", &c.Database.Host)
	setString("DB_PORT", &c.Database.Port)
	setString("DB_USER", &c.Database.Username)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_NAME", &c.Database.Database)
	setString("CA", &c.Database.CAPath)
	c.Database.Host = strings.TrimPrefix(strings.TrimPrefix(c.Database.Host, "http://"), "https://")

	if err := setBool("REDIS_ENABLED", &c.Redis.Enabled); err != nil {
		return err
	}
	setString("REDIS_ADDR", &c.Redis.Addr)
	setString("REDIS_PASSWORD", &c.Redis.Password)
	if v, ok := lookup("REDIS_DB"); ok && v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		c.Redis.Database = db
	}
	if v, ok := lookup("REDIS_CACHE_TTL"); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("REDIS_CACHE_TTL: %w", err)
		}
		c.Redis.CacheTTL = ttl
	}

	if _, err := strconv.Atoi(c.Database.Port); err != nil {
		return fmt.Errorf("invalid database port %q", c.Database.Port)
	}
	return nil
}

// DSN 組成mysql連線字串，有CA時啟用TLS驗證
func (d DatabaseConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = d.Username
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = d.Host + ":" + d.Port
	cfg.DBName = d.Database
	cfg.ParseTime = true
	cfg.Loc = time.Local
	//UPDATE寫入相同值時仍回報符合的列數
	cfg.ClientFoundRows = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	if d.CAPath != "" {
		cfg.TLSConfig = tlsConfigName
	}
	return cfg.FormatDSN()
}

func registerCA(caPath, serverName string) error {
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return fmt.Errorf("read CA %s: %w", caPath, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return fmt.Errorf("no certificates found in %s", caPath)
	}

	return mysql.RegisterTLSConfig(tlsConfigName, &tls.Config{
		RootCAs:    pool,
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	})
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// SetupMySQLConnection 建立資料庫連線，不在啟動時連線，連線失敗會在每次請求時回報
func SetupMySQLConnection(config DatabaseConfig) (*gorm.DB, error) {
	if config.CAPath != "" {
		if err := registerCA(config.CAPath, config.Host); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		DSN:                       config.DSN(),
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(gormLogLevel(config.LogLevel)),
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		log.Printf("warn: database unavailable, requests will fail until it is reachable: %v\n", err)
	}

	return db, nil
}

// SetupRedisConnection 未啟用時回傳nil
func SetupRedisConnection(config RedisConfig) (*redis.Client, error) {
	if !config.Enabled {
		return nil, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("connect redis %s: %w", config.Addr, err)
	}

	return redisClient, nil
}
