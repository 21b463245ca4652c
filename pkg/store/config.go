package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the store location and the application namespace the two
// collections live under, plus the provisioned identity token when one exists.
type Config interface {
	BasePath() string
	AppID() string
	AuthToken() string
}

const defaultAppID = "booking-app-123"

// LoadConfig reads the .hajz config file and HAJZ_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.hajz.db")
	viper.SetDefault("app_id", defaultAppID)
	viper.SetDefault("auth_token", "")
	viper.SetConfigName(".hajz") // .yaml is implicit
	viper.SetEnvPrefix("HAJZ")
	viper.AutomaticEnv()

	if override := os.Getenv("HAJZ_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:  path,
		App:   viper.GetString("app_id"),
		Token: viper.GetString("auth_token"),
	}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	App   string `json:"app_id"`
	Token string `json:"auth_token"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) AppID() string {
	if f.App == "" {
		return defaultAppID
	}
	return f.App
}

func (f *fileConfig) AuthToken() string {
	return f.Token
}
