package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// Refresh Token Config
	RefreshTokenExpiryDuration time.Duration

	// Discord OAuth and webhook
	DiscordClientID     string `mapstructure:"DISCORD_CLIENT_ID"`
	DiscordClientSecret string `mapstructure:"DISCORD_CLIENT_SECRET"`
	DiscordRedirectURL  string `mapstructure:"DISCORD_REDIRECT_URL"`
	DiscordWebhookURL   string `mapstructure:"DISCORD_WEBHOOK_URL"`

	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	// External registries
	VehicleAPIURL   string `mapstructure:"VEHICLE_API_URL"`
	CharacterAPIURL string `mapstructure:"CHARACTER_API_URL"`
	CacheTTL        time.Duration

	// Timeclock department for duty-time reads
	DepartmentID string `mapstructure:"DEPARTMENT_ID"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "repair-shop-app")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("DISCORD_CLIENT_ID", "")
	viper.SetDefault("DISCORD_CLIENT_SECRET", "")
	viper.SetDefault("DISCORD_REDIRECT_URL", "")
	viper.SetDefault("DISCORD_WEBHOOK_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("VEHICLE_API_URL", "")
	viper.SetDefault("CHARACTER_API_URL", "")
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("DEPARTMENT_ID", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiryDuration, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiryDuration = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiryDuration.String())
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiryDuration

	cfg.DiscordClientID = viper.GetString("DISCORD_CLIENT_ID")
	cfg.DiscordClientSecret = viper.GetString("DISCORD_CLIENT_SECRET")
	cfg.DiscordRedirectURL = viper.GetString("DISCORD_REDIRECT_URL")
	cfg.DiscordWebhookURL = viper.GetString("DISCORD_WEBHOOK_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.VehicleAPIURL = viper.GetString("VEHICLE_API_URL")
	cfg.CharacterAPIURL = viper.GetString("CHARACTER_API_URL")
	cfg.DepartmentID = viper.GetString("DEPARTMENT_ID")

	cacheTTLStr := viper.GetString("CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = 10 * time.Minute
		log.Printf("Warning: Invalid value for CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
	}
	cfg.CacheTTL = cacheTTL

	if cfg.DiscordClientID == "" {
		log.Println("Warning: DISCORD_CLIENT_ID not set. Discord OAuth will not function.")
	}
	if cfg.DiscordClientSecret == "" {
		log.Println("Warning: DISCORD_CLIENT_SECRET not set. Discord OAuth will not function.")
	}
	if cfg.DiscordRedirectURL == "" {
		log.Println("Warning: DISCORD_REDIRECT_URL not set. Discord OAuth will not function.")
	}

	return cfg, nil
}
