package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

func Init(filePath string) {
	config, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}
	initFromYaml(config)
	GConfig.applyEnv()
	err = GConfig.Verify()
	if err != nil {
		panic(err)
	}
}

func initFromYaml(config []byte) {
	err := yaml.Unmarshal(config, &GConfig)
	if err != nil {
		panic(err)
	}
}

type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`

	StorageSupplier string `yaml:"storage_supplier"`
	UploadDir       string `yaml:"upload_dir"`
	ClientDir       string `yaml:"client_dir"`
	URLExpires      string `yaml:"url_expires"`

	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
	MaxConcurrent  int   `yaml:"max_concurrent"`

	AliOss `yaml:"ali_oss"`
	MySQL  `yaml:"mysql"`
	Auth   `yaml:"auth"`
	Limits `yaml:"limits"`
}

type AliOss struct {
	AccessKeyId     string `yaml:"access_key_id"`
	AccessKeySecret string `yaml:"access_key_secret"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Directory       string `yaml:"directory"`
}

type MySQL struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// Enabled reports whether a database is configured at all. The service runs
// degraded (no auth, no history) without one.
func (m MySQL) Enabled() bool {
	return m.Host != "" && m.Database != ""
}

type Auth struct {
	JWTSecret    string `yaml:"jwt_secret"`
	TokenExpires string `yaml:"token_expires"`
}

func (a Auth) TokenTTL() time.Duration {
	d, err := time.ParseDuration(a.TokenExpires)
	if err != nil || d <= 0 {
		return 168 * time.Hour
	}
	return d
}

type Limits struct {
	AuthWindow     string `yaml:"auth_window"`
	AuthMax        int    `yaml:"auth_max"`
	CompressWindow string `yaml:"compress_window"`
	CompressMax    int    `yaml:"compress_max"`
}

func (l Limits) AuthWindowDuration() time.Duration {
	return parseWindow(l.AuthWindow)
}

func (l Limits) CompressWindowDuration() time.Duration {
	return parseWindow(l.CompressWindow)
}

func parseWindow(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 15 * time.Minute
	}
	return d
}

func (c *Config) Verify() error {
	if c.StorageSupplier == "" {
		c.StorageSupplier = "local"
	}
	if c.StorageSupplier != "local" && c.StorageSupplier != "ali_oss" {
		return fmt.Errorf("storage_supplier must be local or ali_oss")
	}
	if c.StorageSupplier == "ali_oss" {
		if c.AliOss.Bucket == "" || c.AliOss.Endpoint == "" {
			return fmt.Errorf("ali_oss storage requires bucket and endpoint")
		}
		if _, err := time.ParseDuration(c.URLExpires); err != nil {
			return err
		}
	}
	if c.UploadDir == "" {
		c.UploadDir = "uploads"
	}
	if c.ClientDir == "" {
		c.ClientDir = "client/dist"
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 10 << 20
	}
	if c.AuthMax <= 0 {
		c.AuthMax = 10
	}
	if c.CompressMax <= 0 {
		c.CompressMax = 100
	}
	if c.JWTSecret == "" {
		c.JWTSecret = generateSecret(32)
		log.Println("WARNING: jwt secret not set - generated a random one, sessions will not survive a restart")
	}
	return nil
}

// applyEnv lets environment variables override the yaml file. A .env file is
// honored when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MYSQL_HOST"); v != "" {
		c.MySQL.Host = v
	}
	if v := os.Getenv("MYSQL_DATABASE"); v != "" {
		c.MySQL.Database = v
	}
	if v := os.Getenv("MYSQL_USERNAME"); v != "" {
		c.MySQL.Username = v
	}
	if v := os.Getenv("MYSQL_PASSWORD"); v != "" {
		c.MySQL.Password = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		c.UploadDir = v
	}
	if v := os.Getenv("RATE_LIMIT_AUTH_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.AuthMax = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_COMPRESS_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CompressMax = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		c.AuthWindow = v
		c.CompressWindow = v
	}
}

func generateSecret(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)
}
