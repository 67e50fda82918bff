// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package structs

// DefaultDeliveryChannelName is the name of every delivery channel written by this function.
// AWS Config only supports a single delivery channel per account and region.
const DefaultDeliveryChannelName = "default"

// DeliveryChannel is the desired state of an AWS Config delivery channel.
// Every field except Name and S3BucketName is optional and is only sent when non-empty.
type DeliveryChannel struct {
	Name              string
	S3BucketName      string
	S3KeyPrefix       string
	SNSTopicARN       string
	DeliveryFrequency string
}

// NewDeliveryChannel returns a DeliveryChannel named "default".
func NewDeliveryChannel(bucket, prefix, topicARN, frequency string) DeliveryChannel {
	return DeliveryChannel{
		Name:              DefaultDeliveryChannelName,
		S3BucketName:      bucket,
		S3KeyPrefix:       prefix,
		SNSTopicARN:       topicARN,
		DeliveryFrequency: frequency,
	}
}

// Map renders the delivery channel in the nested shape accepted by PutDeliveryChannel.
// Optional fields are omitted entirely when empty.
func (d DeliveryChannel) Map() map[string]interface{} {
	m := map[string]interface{}{
		"name":         d.Name,
		"s3BucketName": d.S3BucketName,
	}
	if d.S3KeyPrefix != "" {
		m["s3KeyPrefix"] = d.S3KeyPrefix
	}
	if d.SNSTopicARN != "" {
		m["snsTopicARN"] = d.SNSTopicARN
	}
	if d.DeliveryFrequency != "" {
		m["configSnapshotDeliveryProperties"] = map[string]interface{}{
			"deliveryFrequency": d.DeliveryFrequency,
		}
	}
	return m
}
