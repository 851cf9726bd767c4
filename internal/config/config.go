package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	DBHost         string `mapstructure:"DB_HOST"`
	DBPort         string `mapstructure:"DB_PORT"`
	DBUser         string `mapstructure:"DB_USER"`
	DBPassword     string `mapstructure:"DB_PASSWORD"`
	DBName         string `mapstructure:"DB_NAME"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	AccessSecret   string `mapstructure:"ACCESS_SECRET"`
	RefreshSecret  string `mapstructure:"REFRESH_SECRET"`
	ClashAPIKey    string `mapstructure:"CLASH_API_KEY"`
	ClashAPIURL    string `mapstructure:"CLASH_API_URL"`
	Port           string `mapstructure:"PORT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// Explicit binds so viper resolves the variables without a config file.
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("ACCESS_SECRET")
	viper.BindEnv("REFRESH_SECRET")
	viper.BindEnv("CLASH_API_KEY")
	viper.BindEnv("CLASH_API_URL")
	viper.BindEnv("PORT")
	viper.BindEnv("ALLOWED_ORIGINS")

	viper.SetDefault("CLASH_API_URL", "https://api.clashroyale.com/v1")
	viper.SetDefault("PORT", ":5000")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		// No config file is fine, we run on env alone.
	}

	err = viper.Unmarshal(&config)
	return
}
