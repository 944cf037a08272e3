package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/clipstream/otpkit/config"
	"github.com/clipstream/otpkit/services/logging"
	"go.uber.org/zap"
)

// SNSNotifier publishes verification messages as SMS through AWS SNS. The
// destination is expected to be an E.164 phone number.
type SNSNotifier struct {
	client   *sns.Client
	senderID string
	logger   *logging.Service
}

func NewSNSNotifier(cfg *config.Config, logger *logging.Service) (*SNSNotifier, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.SMS.Region),
	}
	if cfg.SMS.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.SMS.AccessKeyID, cfg.SMS.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logger.Info("initializing SNS notifier",
		zap.String("region", cfg.SMS.Region),
		zap.String("sender_id", cfg.SMS.SenderID))

	return &SNSNotifier{
		client:   sns.NewFromConfig(awsCfg),
		senderID: cfg.SMS.SenderID,
		logger:   logger,
	}, nil
}

func (n *SNSNotifier) Deliver(ctx context.Context, destination, message string) error {
	input := &sns.PublishInput{
		PhoneNumber: aws.String(destination),
		Message:     aws.String(message),
	}

	if n.senderID != "" {
		input.MessageAttributes = map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(n.senderID),
			},
		}
	}

	if _, err := n.client.Publish(ctx, input); err != nil {
		return fmt.Errorf("failed to publish SMS: %w", err)
	}

	return nil
}
