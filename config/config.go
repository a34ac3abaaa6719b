package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Upload   UploadConfig   `yaml:"upload"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Users    []User         `yaml:"users"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type AuthConfig struct {
	SecretKey          string `yaml:"secret_key"`
	TokenExpireMinutes int    `yaml:"token_expire_minutes"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type UploadConfig struct {
	MaxFileSize       int64    `yaml:"max_file_size"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

// ArchiveConfig configures optional object storage for uploaded originals.
// Archival is disabled when Endpoint is empty.
type ArchiveConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type User struct {
	ID       int    `yaml:"id"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
}

func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		// No config file: run on defaults and environment only
	default:
		return nil, err
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// applyEnv overrides file values with environment variables
func applyEnv(cfg *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.Auth.SecretKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Auth.SecretKey == "" {
		cfg.Auth.SecretKey = "your-secret-key-change-in-production"
	}
	if cfg.Auth.TokenExpireMinutes == 0 {
		cfg.Auth.TokenExpireMinutes = 60 * 24 * 8 // 8 days
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4"
	}
	if cfg.Upload.MaxFileSize == 0 {
		cfg.Upload.MaxFileSize = 50 * 1024 * 1024 // 50MB
	}
	if len(cfg.Upload.AllowedExtensions) == 0 {
		cfg.Upload.AllowedExtensions = []string{".pdf", ".doc", ".docx", ".txt"}
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "contract_analyzer.db"
	}
	if len(cfg.Users) == 0 {
		// Demo account until a real user store exists
		cfg.Users = []User{
			{ID: 1, Email: "suyash@lawfirm.com", Password: "demo123", FullName: "Suyash Kumar"},
		}
	}
}

// FindUser finds a user by email
func (c *Config) FindUser(email string) *User {
	for i := range c.Users {
		if c.Users[i].Email == email {
			return &c.Users[i]
		}
	}
	return nil
}
