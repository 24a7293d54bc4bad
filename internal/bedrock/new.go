package bedrock

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/ndquoc2512/transcript-flow/internal/config"
	"github.com/ndquoc2512/transcript-flow/internal/logger"
)

// runtimeAPI is the slice of the Bedrock runtime client used here.
type runtimeAPI interface {
	InvokeModel(ctx context.Context, input *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type implClient struct {
	modelID string
	family  Family
	runtime runtimeAPI
	logger  logger.Logger
}

// New creates an Invoker bound to the configured model. The model family is
// classified once here, not per call. Explicit credentials from the config
// take precedence; otherwise the ambient AWS credential chain is used.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Invoker, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Bedrock.Region),
	}
	if cfg.Bedrock.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.Bedrock.AccessKeyID,
				cfg.Bedrock.SecretAccessKey,
				cfg.Bedrock.SessionToken,
			),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	family := Classify(cfg.Bedrock.ModelID)
	log.Debug(ctx, "Model %s classified as family %s", cfg.Bedrock.ModelID, family)

	return &implClient{
		modelID: cfg.Bedrock.ModelID,
		family:  family,
		runtime: bedrockruntime.NewFromConfig(awsCfg),
		logger:  log,
	}, nil
}
