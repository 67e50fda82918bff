// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"

	"github.com/hashicorp/terraform-aws-config-delivery-channel/structs"
)

// ConfigServiceAPI is the subset of the AWS Config SDK client used to manage delivery channels.
type ConfigServiceAPI interface {
	DescribeDeliveryChannels(context.Context, *configservice.DescribeDeliveryChannelsInput, ...func(*configservice.Options)) (*configservice.DescribeDeliveryChannelsOutput, error)
	PutDeliveryChannel(context.Context, *configservice.PutDeliveryChannelInput, ...func(*configservice.Options)) (*configservice.PutDeliveryChannelOutput, error)
	DeleteDeliveryChannel(context.Context, *configservice.DeleteDeliveryChannelInput, ...func(*configservice.Options)) (*configservice.DeleteDeliveryChannelOutput, error)
}

var _ ConfigServiceAPI = (*configservice.Client)(nil)

// ConfigServiceClient provides an API client for managing AWS Config delivery channels.
type ConfigServiceClient struct {
	client ConfigServiceAPI
}

// NewConfigService creates an instance of the ConfigServiceClient from the given AWS SDK config.
func NewConfigService(cfg *aws.Config) *ConfigServiceClient {
	return &ConfigServiceClient{client: configservice.NewFromConfig(*cfg)}
}

// NewConfigServiceFromAPI creates a ConfigServiceClient around an existing API implementation.
func NewConfigServiceFromAPI(api ConfigServiceAPI) *ConfigServiceClient {
	return &ConfigServiceClient{client: api}
}

// DescribeDeliveryChannels returns every delivery channel in the account and region,
// in the order reported by AWS Config.
func (c *ConfigServiceClient) DescribeDeliveryChannels(ctx context.Context) ([]structs.DeliveryChannel, error) {
	out, err := c.client.DescribeDeliveryChannels(ctx, &configservice.DescribeDeliveryChannelsInput{})
	if err != nil {
		return nil, err
	}

	channels := make([]structs.DeliveryChannel, 0, len(out.DeliveryChannels))
	for _, ch := range out.DeliveryChannels {
		d := structs.DeliveryChannel{
			Name:         aws.ToString(ch.Name),
			S3BucketName: aws.ToString(ch.S3BucketName),
			S3KeyPrefix:  aws.ToString(ch.S3KeyPrefix),
			SNSTopicARN:  aws.ToString(ch.SnsTopicARN),
		}
		if p := ch.ConfigSnapshotDeliveryProperties; p != nil {
			d.DeliveryFrequency = string(p.DeliveryFrequency)
		}
		channels = append(channels, d)
	}
	return channels, nil
}

// PutDeliveryChannel creates the delivery channel or replaces it wholesale if one with the
// same name already exists. Empty optional fields are left out of the request.
func (c *ConfigServiceClient) PutDeliveryChannel(ctx context.Context, d structs.DeliveryChannel) error {
	_, err := c.client.PutDeliveryChannel(ctx, &configservice.PutDeliveryChannelInput{
		DeliveryChannel: toSDKDeliveryChannel(d),
	})
	return err
}

// DeleteDeliveryChannel removes the named delivery channel.
func (c *ConfigServiceClient) DeleteDeliveryChannel(ctx context.Context, name string) error {
	_, err := c.client.DeleteDeliveryChannel(ctx, &configservice.DeleteDeliveryChannelInput{
		DeliveryChannelName: &name,
	})
	return err
}

func toSDKDeliveryChannel(d structs.DeliveryChannel) *types.DeliveryChannel {
	ch := &types.DeliveryChannel{
		Name:         aws.String(d.Name),
		S3BucketName: aws.String(d.S3BucketName),
	}
	if d.S3KeyPrefix != "" {
		ch.S3KeyPrefix = aws.String(d.S3KeyPrefix)
	}
	if d.SNSTopicARN != "" {
		ch.SnsTopicARN = aws.String(d.SNSTopicARN)
	}
	if d.DeliveryFrequency != "" {
		ch.ConfigSnapshotDeliveryProperties = &types.ConfigSnapshotDeliveryProperties{
			DeliveryFrequency: types.MaximumExecutionFrequency(d.DeliveryFrequency),
		}
	}
	return ch
}
