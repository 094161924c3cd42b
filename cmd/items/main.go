// Command items is the Lambda entry point serving the item CRUD routes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jacentio/items/api"
	"github.com/jacentio/items/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	client, err := newDynamoDB(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to create DynamoDB client", "error", err)
		os.Exit(1)
	}

	s := store.New(client, store.Config{TableName: cfg.TableName})
	h := api.NewHandler(s, logger)

	logger.Info("starting items handler", "table", s.TableName())
	lambda.Start(h.Handle)
}

// newDynamoDB builds a client from the default AWS credential chain.
// Region and endpoint override the environment when set.
func newDynamoDB(ctx context.Context, cfg *Config) (*dynamodb.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.DynamoDBEndpoint != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(cfg.DynamoDBEndpoint))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}
