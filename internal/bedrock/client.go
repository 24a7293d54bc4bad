package bedrock

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
)

// Invoke sends the prompt to the bound model and returns the generated text.
// A single synchronous call, no retries; every failure surfaces as a
// ProviderError or MalformedResponseError.
func (c *implClient) Invoke(ctx context.Context, prompt string, params Params) (string, error) {
	body, err := buildRequest(c.family, prompt, params)
	if err != nil {
		return "", &ProviderError{
			Kind:    KindInvocation,
			Message: "encode request body",
			Err:     err,
		}
	}

	output, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return "", wrapInvokeError(err)
	}

	return extractText(c.family, output.Body)
}

// wrapInvokeError folds SDK failures into a ProviderError. Service-reported
// errors keep their remote code and message; everything else that happened
// inside the SDK call chain counts as a transport failure.
func wrapInvokeError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Kind:    KindAPI,
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Err:     err,
		}
	}

	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		return &ProviderError{
			Kind:    KindTransport,
			Message: "AWS connection error: " + opErr.Error(),
			Err:     err,
		}
	}

	return &ProviderError{
		Kind:    KindInvocation,
		Message: "unexpected error calling Bedrock: " + err.Error(),
		Err:     err,
	}
}
