// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ResourceProperties are the properties of the custom resource as declared in the template.
type ResourceProperties struct {
	S3BucketName        string `mapstructure:"S3BucketName"`
	S3KeyPrefix         string `mapstructure:"s3KeyPrefix"`
	SNSTopicARN         string `mapstructure:"snsTopicARN"`
	DeliveryFrequency   string `mapstructure:"deliveryFrequency"`
	RemoveOnDeleteStack string `mapstructure:"RemoveOnDeleteStack"`
}

// DecodeResourceProperties converts the raw ResourceProperties of a lifecycle event.
// Absent properties decode to the empty string, except RemoveOnDeleteStack which defaults to "false".
// Non-string values such as booleans are converted to their string form.
func DecodeResourceProperties(raw map[string]interface{}) (ResourceProperties, error) {
	props := ResourceProperties{RemoveOnDeleteStack: "false"}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       boolToStringHook,
		Result:           &props,
	})
	if err != nil {
		return props, err
	}

	if err := decoder.Decode(raw); err != nil {
		return props, fmt.Errorf("error decoding resource properties: %w", err)
	}
	return props, nil
}

// boolToStringHook keeps booleans readable; weak decoding alone would turn true into "1".
func boolToStringHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() == reflect.Bool && to.Kind() == reflect.String {
		return strconv.FormatBool(reflect.ValueOf(data).Bool()), nil
	}
	return data, nil
}

// RemoveOnDelete reports whether the delivery channel should be removed with the stack.
// Only a case-insensitive "true" enables removal.
func (p ResourceProperties) RemoveOnDelete() bool {
	return strings.EqualFold(strings.TrimSpace(p.RemoveOnDeleteStack), "true")
}
