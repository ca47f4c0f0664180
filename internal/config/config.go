package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Addr     string
	LogLevel string

	// CSV paths used when no Postgres DSN is configured.
	TrendCSV     string
	CountriesCSV string

	// Optional; when set the dataset is read from Postgres instead of files.
	PostgresDSN string
}

// Load reads the optional yaml config file and the environment. Environment
// keys use the DASHBOARD_ prefix with dots replaced by underscores, e.g.
// DASHBOARD_LOG_LEVEL or DASHBOARD_DATA_TREND_CSV.
func Load(file string) (*Config, error) {
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
	}

	viper.SetDefault("addr", ":8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("data.trend_csv", "ml_global_prediction.csv")
	viper.SetDefault("data.countries_csv", "country_insight_full.csv")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("dashboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// The default config file is optional; env and defaults are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Addr:         viper.GetString("addr"),
		LogLevel:     viper.GetString("log.level"),
		TrendCSV:     viper.GetString("data.trend_csv"),
		CountriesCSV: viper.GetString("data.countries_csv"),
		PostgresDSN:  viper.GetString("data.postgres_dsn"),
	}, nil
}
