package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App     App     `mapstructure:",squash"`
	Server  Server  `mapstructure:",squash"`
	Vitally Vitally `mapstructure:",squash"`
	Auth    Auth    `mapstructure:",squash"`
	SAML    SAML    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Vitally holds the upstream customer-success API settings. BaseURL is derived
// from the subdomain after unmarshalling.
type Vitally struct {
	Subdomain string `mapstructure:"vitally_subdomain"`
	APIToken  string `mapstructure:"vitally_api_token"`
	AuthType  string `mapstructure:"vitally_auth_type"`
	BaseURL   string `mapstructure:"-"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	SessionTTLHours int    `mapstructure:"auth_session_ttl_hours"`
}

type SAML struct {
	RootURL        string `mapstructure:"saml_root_url"`
	EntityID       string `mapstructure:"saml_sp_entity_id"`
	IDPMetadataURL string `mapstructure:"saml_idp_metadata_url"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("VITALLY_SUBDOMAIN", "mykaarma")
	viper.SetDefault("VITALLY_API_TOKEN", "")
	viper.SetDefault("VITALLY_AUTH_TYPE", "basic")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_SESSION_TTL_HOURS", 8)

	viper.SetDefault("SAML_ROOT_URL", "https://cem.mykaarma.com")
	viper.SetDefault("SAML_SP_ENTITY_ID", "https://cem.mykaarma.com")
	viper.SetDefault("SAML_IDP_METADATA_URL", "")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Vitally.BaseURL = fmt.Sprintf("https://%s.rest.vitally.io/resources", config.Vitally.Subdomain)

	return config, nil
}

// loadEnvFile loads a .env file from the usual local locations, if one exists.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}
}
