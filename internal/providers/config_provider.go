package providers

import (
	"fmt"
	"folio/internal/structures"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "FOLIO_LOG_LEVEL")
	viper.BindEnv("github.token", "FOLIO_GITHUB_TOKEN")
	viper.BindEnv("github.username", "FOLIO_GITHUB_USERNAME")
	viper.BindEnv("wakatime.apiKey", "FOLIO_WAKATIME_API_KEY")
	viper.BindEnv("cache.enabled", "FOLIO_CACHE_ENABLED")
	viper.BindEnv("cache.size", "FOLIO_CACHE_SIZE")
	viper.BindEnv("refresh.enabled", "FOLIO_REFRESH_ENABLED")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if conf.Github.Concurrency <= 0 {
		conf.Github.Concurrency = 4
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "PortfolioAPI"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
