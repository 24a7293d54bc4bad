package bedrock

import (
	"encoding/json"
	"fmt"
)

// buildRequest serializes the prompt into the request body shape the model
// family expects. Shapes are dictated by the providers and must be
// reproduced exactly.
func buildRequest(family Family, prompt string, params Params) ([]byte, error) {
	var body map[string]any

	switch family {
	case FamilyClaude:
		body = map[string]any{
			"anthropic_version": "bedrock-2023-05-31",
			"messages": []map[string]any{
				{"role": "user", "content": prompt},
			},
			"max_tokens":  params.MaxTokens,
			"temperature": params.Temperature,
			"top_p":       params.TopP,
		}
	case FamilyLlama:
		body = map[string]any{
			"prompt":      prompt,
			"max_gen_len": params.MaxTokens,
			"temperature": params.Temperature,
			"top_p":       params.TopP,
		}
	case FamilyMistral:
		body = map[string]any{
			"prompt":      fmt.Sprintf("<s>[INST] %s [/INST]", prompt),
			"max_tokens":  params.MaxTokens,
			"temperature": params.Temperature,
			"top_p":       params.TopP,
		}
	case FamilyJamba:
		body = map[string]any{
			"messages": []map[string]any{
				{"role": "user", "content": prompt},
			},
			"max_tokens":  params.MaxTokens,
			"temperature": params.Temperature,
			"top_p":       params.TopP,
		}
	case FamilyCohere:
		body = map[string]any{
			"message":     prompt,
			"max_tokens":  params.MaxTokens,
			"temperature": params.Temperature,
			"p":           params.TopP,
		}
	default:
		// Nova, and the documented default for unknown families.
		body = map[string]any{
			"messages": []map[string]any{
				{"role": "user", "content": []map[string]any{{"text": prompt}}},
			},
			"inferenceConfig": map[string]any{
				"max_new_tokens": params.MaxTokens,
				"temperature":    params.Temperature,
				"top_p":          params.TopP,
			},
		}
	}

	return json.Marshal(body)
}

// extractText pulls the generated text out of a response body, following the
// family-specific path. A missing path yields a MalformedResponseError.
func extractText(family Family, body []byte) (string, error) {
	var response map[string]any
	if err := json.Unmarshal(body, &response); err != nil {
		return "", &MalformedResponseError{Family: family}
	}

	switch family {
	case FamilyNova:
		// output.message.content[0].text
		if output, ok := response["output"].(map[string]any); ok {
			if message, ok := output["message"].(map[string]any); ok {
				if content, ok := message["content"].([]any); ok && len(content) > 0 {
					if block, ok := content[0].(map[string]any); ok {
						text, _ := block["text"].(string)
						return text, nil
					}
				}
			}
		}
	case FamilyClaude:
		// content[0].text
		if content, ok := response["content"].([]any); ok && len(content) > 0 {
			if block, ok := content[0].(map[string]any); ok {
				text, _ := block["text"].(string)
				return text, nil
			}
		}
	case FamilyLlama:
		// generation
		if text, ok := response["generation"].(string); ok {
			return text, nil
		}
	case FamilyMistral:
		// outputs[0].text
		if outputs, ok := response["outputs"].([]any); ok && len(outputs) > 0 {
			if block, ok := outputs[0].(map[string]any); ok {
				text, _ := block["text"].(string)
				return text, nil
			}
		}
	case FamilyJamba:
		// choices[0].message.content
		if choices, ok := response["choices"].([]any); ok && len(choices) > 0 {
			if choice, ok := choices[0].(map[string]any); ok {
				if message, ok := choice["message"].(map[string]any); ok {
					text, _ := message["content"].(string)
					return text, nil
				}
			}
		}
	case FamilyCohere:
		// text
		if text, ok := response["text"].(string); ok {
			return text, nil
		}
	}

	return "", &MalformedResponseError{Family: family}
}
