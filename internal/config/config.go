package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	LogLevel  string
	LogFormat string
	GinMode   string

	AuthJWTSecret string
	AuthIssuer    string

	UploadURL           string
	UploadPreset        string
	UploadMaxBytes      int64
	UploadRatePerSecond float64

	ShutdownTimeout time.Duration
}

func LoadConfig(log zerolog.Logger) *Config {
	// Solo cargar .env en desarrollo local
	// En producción las variables vienen del entorno
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Warn().Err(err).Msg("⚠️ error loading .env file")
		} else {
			log.Info().Msg("✅ .env file loaded successfully")
		}
	} else {
		log.Info().Msg("🌐 using system environment variables")
	}

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DB", "furnitureCatalog")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("AUTH_JWT_SECRET", "")
	v.SetDefault("AUTH_ISSUER", "")
	v.SetDefault("UPLOAD_URL", "")
	v.SetDefault("UPLOAD_PRESET", "")
	v.SetDefault("UPLOAD_MAX_BYTES", 10<<20)
	v.SetDefault("UPLOAD_RATE_PER_SECOND", 5)
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.AutomaticEnv()
	return v
}

// FromViper lee la configuración desde una instancia de viper ya preparada.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Port:                v.GetString("PORT"),
		MongoURI:            v.GetString("MONGO_URI"),
		MongoDB:             v.GetString("MONGO_DB"),
		LogLevel:            strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:           strings.ToLower(v.GetString("LOG_FORMAT")),
		GinMode:             v.GetString("GIN_MODE"),
		AuthJWTSecret:       v.GetString("AUTH_JWT_SECRET"),
		AuthIssuer:          v.GetString("AUTH_ISSUER"),
		UploadURL:           v.GetString("UPLOAD_URL"),
		UploadPreset:        v.GetString("UPLOAD_PRESET"),
		UploadMaxBytes:      v.GetInt64("UPLOAD_MAX_BYTES"),
		UploadRatePerSecond: v.GetFloat64("UPLOAD_RATE_PER_SECOND"),
		ShutdownTimeout:     v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
}

// Validate comprueba las variables sin las que el servicio no puede arrancar.
func (c *Config) Validate() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGO_URI is required"))
	}
	if c.AuthJWTSecret == "" {
		errs = append(errs, errors.New("AUTH_JWT_SECRET is required"))
	}
	if c.UploadMaxBytes <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_BYTES must be positive"))
	}
	if c.UploadRatePerSecond <= 0 {
		errs = append(errs, errors.New("UPLOAD_RATE_PER_SECOND must be positive"))
	}
	return errors.Join(errs...)
}
