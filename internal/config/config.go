package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Auth struct {
		BcryptCost            int    `yaml:"bcrypt_cost"`
		PasswordMinLength     int    `yaml:"password_min_length"`
		PasswordRequireLetter bool   `yaml:"password_require_letter"`
		PasswordRequireDigit  bool   `yaml:"password_require_digit"`
		AllowAdminSignup      bool   `yaml:"allow_admin_signup"`
		LoginDomain           string `yaml:"login_domain"`
		ResetTokenTTLMinutes  int    `yaml:"reset_token_ttl_minutes"`
		FrontendURL           string `yaml:"frontend_url"`
	} `yaml:"auth"`
}

// Load reads config.yaml (CONFIG_PATH overrides the location) and then applies
// environment overrides. A missing file is fine when the required values come
// from the environment; missing required values are not.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Server.Host = "0.0.0.0"
	c.Server.Port = 5000
	c.Server.Env = "development"
	c.JWT.TTLHours = 8
	c.Auth.BcryptCost = 12
	c.Auth.PasswordMinLength = 8
	c.Auth.PasswordRequireLetter = true
	c.Auth.PasswordRequireDigit = true
	c.Auth.LoginDomain = "sq23rd.com"
	c.Auth.ResetTokenTTLMinutes = 60
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWT.Secret = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		c.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Email.SMTPPort = port
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		c.Email.SMTPUsername = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.Email.SMTPPassword = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		c.Auth.FrontendURL = v
	}
}

// Validate enforces fail-fast startup: no signing secret or store DSN means
// the process must not come up.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database url is not set (DATABASE_URL or config.yaml database.url)")
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is not set (JWT_SECRET or config.yaml jwt.secret)")
	}
	if c.JWT.TTLHours <= 0 {
		return errors.New("jwt ttl_hours must be positive")
	}
	if c.Auth.PasswordMinLength < 8 {
		return fmt.Errorf("password_min_length %d is below the minimum of 8", c.Auth.PasswordMinLength)
	}
	return nil
}
