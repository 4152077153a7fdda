package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/pitwall/pkg/jwtx"
	"github.com/aussiebroadwan/pitwall/pkg/qrcode"
	"github.com/aussiebroadwan/pitwall/pkg/totpx"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// TOTPEncryptionKey seals stored TOTP secrets: 32 raw bytes or base64 of 32 bytes.
	TOTPEncryptionKey string `env:"TOTP_ENCRYPTION_KEY,required"`
	TOTPIssuer        string `env:"TOTP_ISSUER"`
	// DisableRequiresCode makes turning 2FA off demand a current code.
	DisableRequiresCode bool `env:"TOTP_DISABLE_REQUIRES_CODE" envDefault:"true"`
	QRCodeSize          int  `env:"QR_CODE_SIZE" envDefault:"256"`

	Issuer         string        `env:"AUTH_ISSUER" envDefault:"pitwall-auth"`
	SessionTTL     time.Duration `env:"AUTH_SESSION_TTL" envDefault:"12h"`
	DatabaseFile   string        `env:"AUTH_DATABASE_FILE" envDefault:"auth.db"`
	BootstrapToken string        `env:"BOOTSTRAP_TOKEN"` // Optional: enables POST /api/auth/bootstrap
	// AdminRequireSession makes admin endpoints demand the acting admin's
	// session token. A token that is sent is always checked.
	AdminRequireSession bool `env:"AUTH_ADMIN_REQUIRE_SESSION" envDefault:"false"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads the process environment, after loading .env if one exists.
func LoadConfig() (Config, error) {
	// The .env file is optional
	_ = godotenv.Load()
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TOTPIssuer == "" {
		c.TOTPIssuer = totpx.DefaultIssuer
	}
	if c.QRCodeSize <= 0 {
		c.QRCodeSize = qrcode.DefaultSize
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = jwtx.DefaultSessionTTL
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: PORT %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.DatabaseFile == "" {
		return fmt.Errorf("%w: AUTH_DATABASE_FILE is empty", ErrInvalidConfig)
	}
	return nil
}
