package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	MediaLocal = "local"
	MediaS3    = "s3"
)

const devJWTSecret = "yatube-dev-secret"

type Config struct {
	HTTP        HTTPConfig     `mapstructure:"http"`
	StorageType string         `mapstructure:"storage_type"`
	Postgres    PostgresConfig `mapstructure:"postgres"`
	JWT         JWTConfig      `mapstructure:"jwt"`
	Media       MediaConfig    `mapstructure:"media"`
	LogLevel    string         `mapstructure:"log_level"`

	// BootstrapUsers holds "username:password" entries created at startup
	// with memory storage, e.g. YATUBE_BOOTSTRAP_USERS=alice:pw1,bob:pw2.
	BootstrapUsers []string          `mapstructure:"bootstrap_users"`
	Users          []UserCredentials `mapstructure:"-"`
}

type UserCredentials struct {
	Username string
	Password string
}

type HTTPConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type PostgresConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (pc PostgresConfig) GetDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pc.User, pc.Password),
		Host:     fmt.Sprintf("%s:%d", pc.Host, pc.Port),
		Path:     "/" + pc.DB,
		RawQuery: url.Values{"sslmode": {pc.SSLMode}}.Encode(),
	}
	return u.String()
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	AccessTTL  time.Duration `mapstructure:"access_ttl"`
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
}

type MediaConfig struct {
	Type      string   `mapstructure:"type"`
	Root      string   `mapstructure:"root"`
	URLPrefix string   `mapstructure:"url_prefix"`
	S3        S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	PublicURL string `mapstructure:"public_url"`
}

// LoadConfig reads config.yaml from dir (or the working directory) when
// present and applies YATUBE_* environment overrides, e.g.
// YATUBE_POSTGRES_HOST for postgres.host.
func LoadConfig(dir string) (Config, error) {
	v := viper.New()

	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("YATUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("storage_type", StorageMemory)

	v.SetDefault("postgres.user", "yatube")
	v.SetDefault("postgres.password", "yatube")
	v.SetDefault("postgres.db", "yatube")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_ttl", 24*time.Hour)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)

	v.SetDefault("media.type", MediaLocal)
	v.SetDefault("media.root", "media")
	v.SetDefault("media.url_prefix", "/media/")
	v.SetDefault("media.s3.endpoint", "localhost:9000")
	v.SetDefault("media.s3.access_key", "")
	v.SetDefault("media.s3.secret_key", "")
	v.SetDefault("media.s3.bucket", "yatube")
	v.SetDefault("media.s3.use_ssl", false)
	v.SetDefault("media.s3.public_url", "")

	v.SetDefault("log_level", "info")
	v.SetDefault("bootstrap_users", []string{})
}

func (c *Config) validate() error {
	switch c.StorageType {
	case StorageMemory:
		if c.JWT.Secret == "" {
			c.JWT.Secret = devJWTSecret
		}
	case StoragePostgres:
		if c.JWT.Secret == "" {
			return errors.New("jwt.secret is required with postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage_type %q", c.StorageType)
	}

	switch c.Media.Type {
	case MediaLocal, MediaS3:
	default:
		return fmt.Errorf("unknown media.type %q", c.Media.Type)
	}

	if c.JWT.AccessTTL <= 0 || c.JWT.RefreshTTL <= 0 {
		return errors.New("jwt lifetimes must be positive")
	}

	users, err := parseUsers(c.BootstrapUsers)
	if err != nil {
		return err
	}
	c.Users = users
	return nil
}

func parseUsers(entries []string) ([]UserCredentials, error) {
	var out []UserCredentials
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		name, pass, ok := strings.Cut(e, ":")
		if !ok || name == "" || pass == "" {
			return nil, fmt.Errorf("bootstrap_users: want username:password, got %q", e)
		}
		out = append(out, UserCredentials{Username: name, Password: pass})
	}
	return out, nil
}
