package config

import (
	logger "github.com/Bparsons0904/goLogger"

	"github.com/spf13/viper"
)

type Config struct {
	GeneralVersion       string  `mapstructure:"GENERAL_VERSION"`
	Environment          string  `mapstructure:"ENVIRONMENT"`
	ServerPort           int     `mapstructure:"SERVER_PORT"`
	DatabaseHost         string  `mapstructure:"DB_HOST"`
	DatabasePort         int     `mapstructure:"DB_PORT"`
	DatabaseName         string  `mapstructure:"DB_NAME"`
	DatabaseUser         string  `mapstructure:"DB_USER"`
	DatabasePassword     string  `mapstructure:"DB_PASSWORD"`
	DatabaseCacheAddress string  `mapstructure:"DB_CACHE_ADDRESS"`
	DatabaseCachePort    int     `mapstructure:"DB_CACHE_PORT"`
	DatabaseCacheReset   int     `mapstructure:"DB_CACHE_RESET"`
	CorsAllowOrigins     string  `mapstructure:"CORS_ALLOW_ORIGINS"`
	SchedulerEnabled     bool    `mapstructure:"SCHEDULER_ENABLED"`
	SalaryWasherMinimum  float64 `mapstructure:"SALARY_WASHER_MINIMUM"`
	SalaryAdminMinimum   float64 `mapstructure:"SALARY_ADMIN_MINIMUM"`
	SalaryWasherPercent  float64 `mapstructure:"SALARY_WASHER_PERCENT"`
	SalaryAdminPercent   float64 `mapstructure:"SALARY_ADMIN_PERCENT"`
}

var ConfigInstance Config

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")
	log.Info("Initializing config")

	viper.AutomaticEnv()

	envVars := []string{
		"GENERAL_VERSION", "ENVIRONMENT", "SERVER_PORT",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"DB_CACHE_ADDRESS", "DB_CACHE_PORT", "DB_CACHE_RESET",
		"CORS_ALLOW_ORIGINS", "SCHEDULER_ENABLED",
		"SALARY_WASHER_MINIMUM", "SALARY_ADMIN_MINIMUM",
		"SALARY_WASHER_PERCENT", "SALARY_ADMIN_PERCENT",
	}

	for _, env := range envVars {
		if err := viper.BindEnv(env); err != nil {
			log.Warn("Failed to bind environment variable", "env", env, "error", err)
		}
	}

	envVarsSet := viper.IsSet("SERVER_PORT") && viper.IsSet("DB_HOST")

	if envVarsSet {
		log.Info("Environment variables detected, skipping file loading")
	} else {
		viper.SetConfigFile(".env")
		viper.SetConfigType("env")

		if err := viper.ReadInConfig(); err != nil {
			log.Warn("Could not find .env file", "error", err)
		}

		viper.SetConfigFile(".env.local")
		if err := viper.MergeInConfig(); err != nil {
			log.Debug("No .env.local file found", "error", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, log.Err("Fatal error: could not unmarshal config", err)
	}

	if err := validateConfig(&config, log); err != nil {
		return Config{}, err
	}

	log.Info("Successfully initialized config", "port", config.ServerPort, "env", config.Environment)
	return ConfigInstance, nil
}

func GetConfig() Config {
	return ConfigInstance
}

func validateConfig(config *Config, log logger.Logger) error {
	if config.ServerPort <= 0 {
		return log.Error(
			"Fatal error: invalid server port",
			"port", config.ServerPort,
		)
	}

	if config.SalaryWasherMinimum < 0 || config.SalaryAdminMinimum < 0 {
		return log.Error(
			"Fatal error: salary minimums cannot be negative",
			"washerMinimum", config.SalaryWasherMinimum,
			"adminMinimum", config.SalaryAdminMinimum,
		)
	}

	if config.SalaryWasherPercent < 0 || config.SalaryWasherPercent > 1 ||
		config.SalaryAdminPercent < 0 || config.SalaryAdminPercent > 1 {
		return log.Error(
			"Fatal error: salary percentages must be fractions between 0 and 1",
			"washerPercent", config.SalaryWasherPercent,
			"adminPercent", config.SalaryAdminPercent,
		)
	}

	// Sensible defaults for a dashboard deployment that never configured pay
	// rules: washers keep 35% of their revenue share, admins 10% of the day.
	if config.SalaryWasherPercent == 0 {
		config.SalaryWasherPercent = 0.35
	}
	if config.SalaryAdminPercent == 0 {
		config.SalaryAdminPercent = 0.10
	}

	ConfigInstance = *config
	return nil
}
