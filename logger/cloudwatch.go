package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
)

// CloudWatchWriter ships log lines to a CloudWatch Logs stream. It
// implements io.Writer so it can be used as an extra zap sink; disabled
// writers swallow input so local runs need no AWS access.
type CloudWatchWriter struct {
	client        *cloudwatchlogs.Client
	logGroupName  string
	logStreamName string
	sequenceToken *string
	enabled       bool
}

// NewCloudWatchWriter creates the writer. It is enabled only when
// CLOUDWATCH_ENABLED=true; the group defaults to /housecraft/storefront and
// the stream name embeds the start time.
func NewCloudWatchWriter(ctx context.Context, cfg aws.Config, serviceName string) (*CloudWatchWriter, error) {
	enabled := os.Getenv("CLOUDWATCH_ENABLED") == "true"

	group := os.Getenv("CLOUDWATCH_LOG_GROUP")
	if group == "" {
		group = "/housecraft/storefront"
	}

	w := &CloudWatchWriter{
		client:        cloudwatchlogs.NewFromConfig(cfg),
		logGroupName:  group,
		logStreamName: fmt.Sprintf("%s-%d", serviceName, time.Now().Unix()),
		enabled:       enabled,
	}

	if enabled {
		if err := w.ensureLogGroup(ctx); err != nil {
			return nil, fmt.Errorf("ensure log group: %w", err)
		}
		if err := w.createLogStream(ctx); err != nil {
			return nil, fmt.Errorf("create log stream: %w", err)
		}
	}
	return w, nil
}

// Enabled reports whether lines are actually shipped.
func (w *CloudWatchWriter) Enabled() bool { return w.enabled }

func (w *CloudWatchWriter) ensureLogGroup(ctx context.Context) error {
	_, err := w.client.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{
		LogGroupName: aws.String(w.logGroupName),
	})
	if err != nil {
		var exists *types.ResourceAlreadyExistsException
		if !errors.As(err, &exists) {
			return err
		}
	}
	_, err = w.client.PutRetentionPolicy(ctx, &cloudwatchlogs.PutRetentionPolicyInput{
		LogGroupName:    aws.String(w.logGroupName),
		RetentionInDays: aws.Int32(30),
	})
	return err
}

func (w *CloudWatchWriter) createLogStream(ctx context.Context) error {
	_, err := w.client.CreateLogStream(ctx, &cloudwatchlogs.CreateLogStreamInput{
		LogGroupName:  aws.String(w.logGroupName),
		LogStreamName: aws.String(w.logStreamName),
	})
	return err
}

// Write implements io.Writer. Shipping failures are reported to stderr but
// never fail the write; logging must not take the service down.
func (w *CloudWatchWriter) Write(p []byte) (int, error) {
	if !w.enabled {
		return len(p), nil
	}

	event := types.InputLogEvent{
		Message:   aws.String(string(p)),
		Timestamp: aws.Int64(time.Now().UnixMilli()),
	}
	out, err := w.client.PutLogEvents(context.Background(), &cloudwatchlogs.PutLogEventsInput{
		LogGroupName:  aws.String(w.logGroupName),
		LogStreamName: aws.String(w.logStreamName),
		LogEvents:     []types.InputLogEvent{event},
		SequenceToken: w.sequenceToken,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "CloudWatch write error: %v\n", err)
		return len(p), nil
	}
	w.sequenceToken = out.NextSequenceToken
	return len(p), nil
}
