// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp/terraform-aws-config-delivery-channel/structs"
)

const (
	deliveryChannelDataKey = "DELIVERY_CHANNEL"
	successfulStatus       = "Successful"
)

// CreateDeliveryChannel writes the "default" delivery channel from the event's properties.
// When no bucket is given the bucket, and the prefix if none was given either, are taken from
// the first existing delivery channel. The returned physical resource ID is the name of that
// channel, or "default" when nothing was discovered.
func (e Environment) CreateDeliveryChannel(ctx context.Context, event cfn.Event, logger hclog.Logger) (string, map[string]interface{}, error) {
	props, err := DecodeResourceProperties(event.ResourceProperties)
	if err != nil {
		return "", nil, err
	}

	logger.Info("Starting the AWS Config delivery channel create", "bucket", props.S3BucketName)

	bucket := props.S3BucketName
	prefix := props.S3KeyPrefix
	physicalID := structs.DefaultDeliveryChannelName

	if bucket == "" {
		channels, err := e.ConfigService.DescribeDeliveryChannels(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("error describing delivery channels: %w", err)
		}

		if len(channels) > 0 {
			existing := channels[0]
			bucket = existing.S3BucketName
			if prefix == "" {
				prefix = existing.S3KeyPrefix
			}
			physicalID = existing.Name
			logger.Debug("Adopting existing delivery channel", "name", existing.Name, "bucket", bucket, "prefix", prefix)

			if existing.Name != structs.DefaultDeliveryChannelName {
				logger.Warn("Existing delivery channel is not named default; the default channel will be written instead",
					"existing", existing.Name)
			}
		} else {
			logger.Debug("No existing delivery channel found")
		}
	}

	channel := structs.NewDeliveryChannel(bucket, prefix, props.SNSTopicARN, props.DeliveryFrequency)
	logger.Debug("Putting delivery channel", "delivery_channel", channel.Map())

	err = e.ConfigService.PutDeliveryChannel(ctx, channel)
	if err != nil {
		return "", nil, fmt.Errorf("error putting delivery channel: %w", err)
	}

	logger.Info("Completed the AWS Config delivery channel create")

	return physicalID, map[string]interface{}{deliveryChannelDataKey: successfulStatus}, nil
}

// UpdateDeliveryChannel reconciles the delivery channel from the event's current properties.
// It behaves exactly like CreateDeliveryChannel.
func (e Environment) UpdateDeliveryChannel(ctx context.Context, event cfn.Event, logger hclog.Logger) (string, map[string]interface{}, error) {
	return e.CreateDeliveryChannel(ctx, event, logger)
}

// DeleteDeliveryChannel removes the "default" delivery channel when RemoveOnDeleteStack is true.
// Without RemoveOnDeleteStack the channel outlives the stack. With RemoveOnDeleteStack but no
// bucket the create path is run instead and the channel is left in place.
func (e Environment) DeleteDeliveryChannel(ctx context.Context, event cfn.Event, logger hclog.Logger) (string, map[string]interface{}, error) {
	props, err := DecodeResourceProperties(event.ResourceProperties)
	if err != nil {
		return "", nil, err
	}

	if !props.RemoveOnDelete() {
		logger.Info("Skipping the AWS Config delivery channel delete", "remove_on_delete_stack", props.RemoveOnDeleteStack)
		return event.PhysicalResourceID, nil, nil
	}

	if props.S3BucketName == "" {
		logger.Info("No bucket given, re-applying the existing delivery channel instead of deleting it")
		if _, _, err := e.CreateDeliveryChannel(ctx, event, logger); err != nil {
			return event.PhysicalResourceID, nil, err
		}
	} else {
		err = e.ConfigService.DeleteDeliveryChannel(ctx, structs.DefaultDeliveryChannelName)
		if err != nil {
			return event.PhysicalResourceID, nil, fmt.Errorf("error deleting delivery channel: %w", err)
		}
	}

	logger.Info("Completed the AWS Config delivery channel delete")

	return event.PhysicalResourceID, nil, nil
}
