// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp/terraform-aws-config-delivery-channel/structs"
)

func TestDescribeDeliveryChannels(t *testing.T) {
	ctx := context.Background()

	t.Run("converts every channel in order", func(t *testing.T) {
		api := &mockConfigService{
			channels: []types.DeliveryChannel{
				{
					Name:         aws.String("existing"),
					S3BucketName: aws.String("bucket-1"),
					S3KeyPrefix:  aws.String("prefix-1"),
					SnsTopicARN:  aws.String("arn:topic"),
					ConfigSnapshotDeliveryProperties: &types.ConfigSnapshotDeliveryProperties{
						DeliveryFrequency: types.MaximumExecutionFrequencyOneHour,
					},
				},
				{
					Name:         aws.String("other"),
					S3BucketName: aws.String("bucket-2"),
				},
			},
		}
		c := NewConfigServiceFromAPI(api)

		channels, err := c.DescribeDeliveryChannels(ctx)
		require.NoError(t, err)
		require.Equal(t, []structs.DeliveryChannel{
			{
				Name:              "existing",
				S3BucketName:      "bucket-1",
				S3KeyPrefix:       "prefix-1",
				SNSTopicARN:       "arn:topic",
				DeliveryFrequency: "One_Hour",
			},
			{
				Name:         "other",
				S3BucketName: "bucket-2",
			},
		}, channels)
	})

	t.Run("no channels", func(t *testing.T) {
		c := NewConfigServiceFromAPI(&mockConfigService{})
		channels, err := c.DescribeDeliveryChannels(ctx)
		require.NoError(t, err)
		require.Empty(t, channels)
	})

	t.Run("api error", func(t *testing.T) {
		c := NewConfigServiceFromAPI(&mockConfigService{err: errors.New("AccessDenied")})
		_, err := c.DescribeDeliveryChannels(ctx)
		require.EqualError(t, err, "AccessDenied")
	})
}

func TestPutDeliveryChannel(t *testing.T) {
	cases := map[string]struct {
		channel  structs.DeliveryChannel
		expected *types.DeliveryChannel
	}{
		"bucket only": {
			channel: structs.NewDeliveryChannel("bucket", "", "", ""),
			expected: &types.DeliveryChannel{
				Name:         aws.String("default"),
				S3BucketName: aws.String("bucket"),
			},
		},
		"empty bucket is sent as is": {
			channel: structs.NewDeliveryChannel("", "", "", ""),
			expected: &types.DeliveryChannel{
				Name:         aws.String("default"),
				S3BucketName: aws.String(""),
			},
		},
		"all fields": {
			channel: structs.NewDeliveryChannel("bucket", "prefix", "arn:topic", "Twelve_Hours"),
			expected: &types.DeliveryChannel{
				Name:         aws.String("default"),
				S3BucketName: aws.String("bucket"),
				S3KeyPrefix:  aws.String("prefix"),
				SnsTopicARN:  aws.String("arn:topic"),
				ConfigSnapshotDeliveryProperties: &types.ConfigSnapshotDeliveryProperties{
					DeliveryFrequency: types.MaximumExecutionFrequencyTwelveHours,
				},
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			api := &mockConfigService{}
			err := NewConfigServiceFromAPI(api).PutDeliveryChannel(context.Background(), c.channel)
			require.NoError(t, err)
			require.Len(t, api.puts, 1)
			require.Equal(t, c.expected, api.puts[0])
		})
	}

	t.Run("api error", func(t *testing.T) {
		api := &mockConfigService{err: errors.New("NoSuchBucketException")}
		err := NewConfigServiceFromAPI(api).PutDeliveryChannel(context.Background(), structs.NewDeliveryChannel("", "", "", ""))
		require.EqualError(t, err, "NoSuchBucketException")
	})
}

func TestDeleteDeliveryChannel(t *testing.T) {
	api := &mockConfigService{}
	err := NewConfigServiceFromAPI(api).DeleteDeliveryChannel(context.Background(), "default")
	require.NoError(t, err)
	require.Equal(t, []string{"default"}, api.deletes)
}

type mockConfigService struct {
	channels []types.DeliveryChannel
	err      error

	puts    []*types.DeliveryChannel
	deletes []string
}

var _ ConfigServiceAPI = (*mockConfigService)(nil)

func (m *mockConfigService) DescribeDeliveryChannels(_ context.Context, _ *configservice.DescribeDeliveryChannelsInput, _ ...func(*configservice.Options)) (*configservice.DescribeDeliveryChannelsOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &configservice.DescribeDeliveryChannelsOutput{DeliveryChannels: m.channels}, nil
}

func (m *mockConfigService) PutDeliveryChannel(_ context.Context, i *configservice.PutDeliveryChannelInput, _ ...func(*configservice.Options)) (*configservice.PutDeliveryChannelOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.puts = append(m.puts, i.DeliveryChannel)
	return &configservice.PutDeliveryChannelOutput{}, nil
}

func (m *mockConfigService) DeleteDeliveryChannel(_ context.Context, i *configservice.DeleteDeliveryChannelInput, _ ...func(*configservice.Options)) (*configservice.DeleteDeliveryChannelOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.deletes = append(m.deletes, aws.ToString(i.DeliveryChannelName))
	return &configservice.DeleteDeliveryChannelOutput{}, nil
}
