// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/hashicorp/go-hclog"
	"github.com/kelseyhightower/envconfig"

	"github.com/hashicorp/terraform-aws-config-delivery-channel/client"
	"github.com/hashicorp/terraform-aws-config-delivery-channel/structs"
)

// Config holds the configuration from the environment.
type Config struct {
	// LogLevel is the configured logging level.
	LogLevel string `envconfig:"LOG_LEVEL" default:"debug"`

	// JSONLogging enables JSON formatted log output.
	JSONLogging bool `envconfig:"JSON_LOGGING" default:"true"`

	// Region is the AWS region whose delivery channel is managed.
	// If not set, the region is resolved by the AWS SDK.
	Region string `envconfig:"AWS_REGION"`
}

// DeliveryChannelAPIClient is an interface for reading and writing AWS Config delivery channels.
type DeliveryChannelAPIClient interface {
	DescribeDeliveryChannels(ctx context.Context) ([]structs.DeliveryChannel, error)
	PutDeliveryChannel(ctx context.Context, d structs.DeliveryChannel) error
	DeleteDeliveryChannel(ctx context.Context, name string) error
}

// Environment contains all of the function's dependencies.
// It is built once per process and shared by every invocation.
type Environment struct {
	Config

	// ConfigService is the client used to manage the delivery channel.
	ConfigService DeliveryChannelAPIClient

	// Logger is used to log messages.
	Logger hclog.Logger

	// LogGroupName is the CloudWatch log group operators are pointed at when an invocation fails.
	LogGroupName string
}

// SetupEnvironment constructs the processing Environment based on environment variables.
func SetupEnvironment(ctx context.Context) (Environment, error) {
	var env Environment

	err := envconfig.Process("", &env.Config)
	if err != nil {
		return env, err
	}

	env.Logger = newLogger(env.Config)
	env.LogGroupName = lambdacontext.LogGroupName

	opts := []func(*config.LoadOptions) error{
		config.WithRetryer(func() aws.Retryer {
			// Adaptive mode should retry on hitting rate limits.
			return retry.AddWithMaxBackoffDelay(retry.NewAdaptiveMode(), 3*time.Second)
		}),
	}
	if env.Region != "" {
		opts = append(opts, config.WithRegion(env.Region))
	}

	sdkConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return env, err
	}

	env.ConfigService = client.NewConfigService(&sdkConfig)

	return env, nil
}

func newLogger(cfg Config) hclog.Logger {
	return hclog.New(
		&hclog.LoggerOptions{
			Name:       "config-delivery-channel",
			Level:      hclog.LevelFromString(cfg.LogLevel),
			JSONFormat: cfg.JSONLogging,
		},
	)
}
