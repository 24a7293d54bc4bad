package bedrock

import "context"

// Invoker sends a single prompt to a Bedrock model and returns the generated
// text. One instance is bound to one model id for its whole lifetime.
type Invoker interface {
	Invoke(ctx context.Context, prompt string, params Params) (string, error)
}

// Params are the generation parameters for one invocation.
type Params struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// DefaultParams returns the standard generation parameters.
func DefaultParams() Params {
	return Params{
		MaxTokens:   2048,
		Temperature: 0.7,
		TopP:        0.9,
	}
}
