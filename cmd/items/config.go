package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/jacentio/items/store"
)

// Config holds the function's settings, read from ITEMS_* environment variables.
type Config struct {
	TableName        string
	Region           string
	DynamoDBEndpoint string
	LogLevel         slog.Level
}

func loadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ITEMS")
	v.AutomaticEnv()

	v.SetDefault("table_name", store.DefaultTableName)
	v.SetDefault("log_level", "info")

	cfg := &Config{
		TableName:        v.GetString("table_name"),
		Region:           v.GetString("aws_region"),
		DynamoDBEndpoint: v.GetString("dynamodb_endpoint"),
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return cfg, nil
}
