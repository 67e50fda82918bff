// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"
)

var errUnsupportedRequestType = errors.New("unsupported request type")

// Event is a CloudFormation custom resource event along with the routing metadata
// carried in the same envelope.
type Event struct {
	cfn.Event
	Source string `json:"source"`
	Region string `json:"region"`
}

// UnexpectedError is returned in place of any error raised while handling a lifecycle event.
// The underlying error is only written to the log group.
type UnexpectedError struct {
	LogGroup string
}

func (e UnexpectedError) Error() string {
	return fmt.Sprintf("Unexpected error executing Lambda function. Review CloudWatch logs '%s' for details.", e.LogGroup)
}

// HandleRequest is the Lambda entry point. It hands the event to the custom resource runtime,
// which reports the outcome to CloudFormation.
func (e Environment) HandleRequest(ctx context.Context, event Event) (string, error) {
	e.Logger.Info("Invoking AWS Config", "source", event.Source, "region", event.Region)
	e.Logger.Debug("Lambda handler started", "request_type", event.RequestType)

	return cfn.LambdaWrap(e.HandleLifecycleEvent)(ctx, event.Event)
}

// HandleLifecycleEvent dispatches the event and collapses any failure into a single UnexpectedError.
func (e Environment) HandleLifecycleEvent(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error) {
	physicalID, data, err := e.Dispatch(ctx, event)
	if err != nil {
		e.Logger.Error("Unexpected error", "error", err, "request_type", event.RequestType)
		if physicalID == "" {
			physicalID = event.PhysicalResourceID
		}
		return physicalID, nil, UnexpectedError{LogGroup: e.LogGroupName}
	}
	return physicalID, data, nil
}

// Dispatch routes the event to the create, update or delete handler based on its request type.
func (e Environment) Dispatch(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error) {
	logger := e.Logger.With(
		"request_type", event.RequestType,
		"request_id", event.RequestID,
		"logical_resource_id", event.LogicalResourceID,
	)
	logger.Info("Received event")

	switch event.RequestType {
	case cfn.RequestCreate:
		return e.CreateDeliveryChannel(ctx, event, logger)
	case cfn.RequestUpdate:
		return e.UpdateDeliveryChannel(ctx, event, logger)
	case cfn.RequestDelete:
		return e.DeleteDeliveryChannel(ctx, event, logger)
	}

	return "", nil, fmt.Errorf("%w: %q", errUnsupportedRequestType, event.RequestType)
}
