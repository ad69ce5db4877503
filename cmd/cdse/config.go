package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/airbusgeo/cdse-catalog/interface/catalog/copernicus"
	"github.com/airbusgeo/cdse-catalog/interface/provider"
	"github.com/airbusgeo/cdse-catalog/interface/shared"
)

type config struct {
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	CatalogueURL string `mapstructure:"catalogue_url"`
	DownloadURL  string `mapstructure:"download_url"`
	TokenURL     string `mapstructure:"token_url"`
	HTTPProxy    string `mapstructure:"http_proxy"`
	HTTPSProxy   string `mapstructure:"https_proxy"`
	LogLevel     string `mapstructure:"log_level"`
	Development  bool   `mapstructure:"development"`

	creds *shared.Credentials
}

// initConfig reads .cdse.yaml (current directory, then home directory) and the CDSE_* environment variables
func initConfig(v *viper.Viper) error {
	v.SetConfigName(".cdse")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetEnvPrefix("CDSE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("catalogue_url", copernicus.CatalogueURL)
	v.SetDefault("download_url", provider.CopernicusDownloadURL)
	v.SetDefault("token_url", shared.CopernicusTokenURL)
	v.SetDefault("http_proxy", "")
	v.SetDefault("https_proxy", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("development", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("initConfig: %w", err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (*config, error) {
	cfg := &config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("loadConfig: %w", err)
	}
	return cfg, nil
}

func (c *config) proxies() map[string]string {
	proxies := map[string]string{}
	if c.HTTPProxy != "" {
		proxies["http"] = c.HTTPProxy
	}
	if c.HTTPSProxy != "" {
		proxies["https"] = c.HTTPSProxy
	}
	if len(proxies) == 0 {
		return nil
	}
	return proxies
}

// credentials are shared by the catalogue and the downloads, so that the token is requested once
func (c *config) credentials() *shared.Credentials {
	if c.creds == nil {
		c.creds = &shared.Credentials{Username: c.Username, Password: c.Password, TokenURL: c.TokenURL}
	}
	return c.creds
}

func (c *config) provider() *copernicus.Provider {
	p := copernicus.DefaultProvider()
	p.BaseURL = c.CatalogueURL
	p.Sessions = c.credentials()
	return p
}
