package bedrock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, family Family) map[string]any {
	t.Helper()

	body, err := buildRequest(family, "summarize this", Params{
		MaxTokens:   2048,
		Temperature: 0.7,
		TopP:        0.9,
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded
}

func TestBuildRequestNova(t *testing.T) {
	body := decodeBody(t, FamilyNova)

	messages := body["messages"].([]any)
	message := messages[0].(map[string]any)
	assert.Equal(t, "user", message["role"])
	content := message["content"].([]any)
	assert.Equal(t, "summarize this", content[0].(map[string]any)["text"])

	inference := body["inferenceConfig"].(map[string]any)
	assert.Equal(t, 2048.0, inference["max_new_tokens"])
	assert.Equal(t, 0.7, inference["temperature"])
	assert.Equal(t, 0.9, inference["top_p"])
}

func TestBuildRequestClaude(t *testing.T) {
	body := decodeBody(t, FamilyClaude)

	assert.Equal(t, "bedrock-2023-05-31", body["anthropic_version"])
	message := body["messages"].([]any)[0].(map[string]any)
	assert.Equal(t, "user", message["role"])
	assert.Equal(t, "summarize this", message["content"])
	assert.Equal(t, 2048.0, body["max_tokens"])
}

func TestBuildRequestLlama(t *testing.T) {
	body := decodeBody(t, FamilyLlama)

	assert.Equal(t, "summarize this", body["prompt"])
	assert.Equal(t, 2048.0, body["max_gen_len"])
}

func TestBuildRequestMistral(t *testing.T) {
	body := decodeBody(t, FamilyMistral)

	assert.Equal(t, "<s>[INST] summarize this [/INST]", body["prompt"])
	assert.Equal(t, 2048.0, body["max_tokens"])
}

func TestBuildRequestJamba(t *testing.T) {
	body := decodeBody(t, FamilyJamba)

	message := body["messages"].([]any)[0].(map[string]any)
	assert.Equal(t, "user", message["role"])
	assert.Equal(t, "summarize this", message["content"])
	assert.Equal(t, 2048.0, body["max_tokens"])
}

func TestBuildRequestCohere(t *testing.T) {
	body := decodeBody(t, FamilyCohere)

	assert.Equal(t, "summarize this", body["message"])
	assert.Equal(t, 0.9, body["p"])
	assert.NotContains(t, body, "top_p")
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name   string
		family Family
		body   string
		want   string
	}{
		{
			name:   "nova",
			family: FamilyNova,
			body:   `{"output": {"message": {"content": [{"text": "generated"}]}}}`,
			want:   "generated",
		},
		{
			name:   "claude",
			family: FamilyClaude,
			body:   `{"content": [{"text": "generated"}]}`,
			want:   "generated",
		},
		{
			name:   "llama",
			family: FamilyLlama,
			body:   `{"generation": "generated"}`,
			want:   "generated",
		},
		{
			name:   "mistral",
			family: FamilyMistral,
			body:   `{"outputs": [{"text": "generated"}]}`,
			want:   "generated",
		},
		{
			name:   "jamba",
			family: FamilyJamba,
			body:   `{"choices": [{"message": {"content": "generated"}}]}`,
			want:   "generated",
		},
		{
			name:   "cohere",
			family: FamilyCohere,
			body:   `{"text": "generated"}`,
			want:   "generated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractText(tt.family, []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTextMalformed(t *testing.T) {
	tests := []struct {
		name   string
		family Family
		body   string
	}{
		{"nova missing output", FamilyNova, `{"foo": "bar"}`},
		{"nova empty content", FamilyNova, `{"output": {"message": {"content": []}}}`},
		{"claude empty content", FamilyClaude, `{"content": []}`},
		{"llama wrong type", FamilyLlama, `{"generation": 42}`},
		{"mistral empty outputs", FamilyMistral, `{"outputs": []}`},
		{"jamba empty choices", FamilyJamba, `{"choices": []}`},
		{"cohere missing text", FamilyCohere, `{"message": "x"}`},
		{"not json", FamilyClaude, `garbage`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractText(tt.family, []byte(tt.body))
			require.Error(t, err)

			var malformed *MalformedResponseError
			assert.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.family, malformed.Family)
		})
	}
}
