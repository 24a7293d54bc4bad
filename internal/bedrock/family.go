package bedrock

import "strings"

// Family identifies the wire-protocol dialect a Bedrock model expects.
type Family int

const (
	FamilyNova Family = iota
	FamilyClaude
	FamilyLlama
	FamilyMistral
	FamilyJamba
	FamilyCohere
)

func (f Family) String() string {
	switch f {
	case FamilyNova:
		return "nova"
	case FamilyClaude:
		return "claude"
	case FamilyLlama:
		return "llama"
	case FamilyMistral:
		return "mistral"
	case FamilyJamba:
		return "jamba"
	case FamilyCohere:
		return "cohere"
	default:
		return "unknown"
	}
}

// knownModels maps supported Bedrock model ids to their request/response
// format family.
var knownModels = map[string]Family{
	// Amazon Nova models
	"amazon.nova-micro-v1:0": FamilyNova,
	"amazon.nova-lite-v1:0":  FamilyNova,
	"amazon.nova-pro-v1:0":   FamilyNova,

	// Anthropic Claude models
	"anthropic.claude-3-5-sonnet-20241022-v2:0": FamilyClaude,
	"anthropic.claude-3-5-haiku-20241022-v1:0":  FamilyClaude,
	"anthropic.claude-3-opus-20240229-v1:0":     FamilyClaude,
	"anthropic.claude-3-sonnet-20240229-v1:0":   FamilyClaude,
	"anthropic.claude-3-haiku-20240307-v1:0":    FamilyClaude,

	// Meta Llama models
	"meta.llama3-1-8b-instruct-v1:0":   FamilyLlama,
	"meta.llama3-1-70b-instruct-v1:0":  FamilyLlama,
	"meta.llama3-1-405b-instruct-v1:0": FamilyLlama,
	"meta.llama3-2-1b-instruct-v1:0":   FamilyLlama,
	"meta.llama3-2-3b-instruct-v1:0":   FamilyLlama,
	"meta.llama3-2-11b-instruct-v1:0":  FamilyLlama,
	"meta.llama3-2-90b-instruct-v1:0":  FamilyLlama,

	// Mistral AI models
	"mistral.mistral-7b-instruct-v0:2":   FamilyMistral,
	"mistral.mixtral-8x7b-instruct-v0:1": FamilyMistral,
	"mistral.mistral-large-2402-v1:0":    FamilyMistral,
	"mistral.mistral-large-2407-v1:0":    FamilyMistral,

	// AI21 Labs Jamba models
	"ai21.jamba-1-5-mini-v1:0":  FamilyJamba,
	"ai21.jamba-1-5-large-v1:0": FamilyJamba,

	// Cohere Command models
	"cohere.command-r-v1:0":      FamilyCohere,
	"cohere.command-r-plus-v1:0": FamilyCohere,
}

var vendorPrefixes = []struct {
	prefix string
	family Family
}{
	{"amazon.nova", FamilyNova},
	{"anthropic.claude", FamilyClaude},
	{"meta.llama", FamilyLlama},
	{"mistral.", FamilyMistral},
	{"ai21.jamba", FamilyJamba},
	{"cohere.command", FamilyCohere},
}

// Classify determines the family for a model id. Unlisted ids are matched by
// vendor prefix; anything still unknown falls back to the Nova shape, which
// keeps compatibility with new Amazon releases but will mis-encode requests
// for a truly unknown vendor.
func Classify(modelID string) Family {
	if family, ok := knownModels[modelID]; ok {
		return family
	}

	for _, vp := range vendorPrefixes {
		if strings.HasPrefix(modelID, vp.prefix) {
			return vp.family
		}
	}

	return FamilyNova
}
