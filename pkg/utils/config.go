package utils

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Venue    VenueConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

// VenueConfig carries the venue constants every booking derives from:
// per-head prices, the fixed eating window, and the physical table
// count.
type VenueConfig struct {
	AdultPrice     float64
	ChildPrice     float64
	EatingDuration time.Duration
	TableCount     int
	QRCodeDir      string
}

// TableIDs returns the fixed ordered enumeration of physical tables
// (T01, T02, ...). Occupancies may only reference ids from this set.
func (v VenueConfig) TableIDs() []string {
	ids := make([]string, v.TableCount)
	for i := range ids {
		ids[i] = fmt.Sprintf("T%02d", i+1)
	}
	return ids
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 12)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("ADULT_PRICE", 260)
	viper.SetDefault("CHILD_PRICE", 199)
	viper.SetDefault("EATING_DURATION_MINUTES", 60)
	viper.SetDefault("TABLE_COUNT", 10)
	viper.SetDefault("QR_CODE_DIR", "static/qrcodes")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			BaseURL: viper.GetString("BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Venue: VenueConfig{
			AdultPrice:     viper.GetFloat64("ADULT_PRICE"),
			ChildPrice:     viper.GetFloat64("CHILD_PRICE"),
			EatingDuration: time.Duration(viper.GetInt("EATING_DURATION_MINUTES")) * time.Minute,
			TableCount:     viper.GetInt("TABLE_COUNT"),
			QRCodeDir:      viper.GetString("QR_CODE_DIR"),
		},
	}

	return config, nil
}
