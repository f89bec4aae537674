package ai

import "context"

// ModelPreset selects sampling parameters for a call.
type ModelPreset string

const (
	PresetCreative ModelPreset = "creative" // movie picks
	PresetBalanced ModelPreset = "balanced" // mood analyses
)

type ModelConfig struct {
	Temperature      float32
	TopP             float32
	TopK             int
	MaxOutputTokens  int
	ResponseMimeType string // "application/json" or "text/plain"
}

type OpenAIConfig struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

type GenerateOptions struct {
	Model     string
	JSONMode  bool
	Overrides *ModelConfig
}

func GetPresetConfig(preset ModelPreset) ModelConfig {
	switch preset {
	case PresetCreative:
		return ModelConfig{
			Temperature:     0.7,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 2048,
		}
	case PresetBalanced:
		return ModelConfig{
			Temperature:     0.4,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 4096,
		}
	default:
		return GetPresetConfig(PresetBalanced)
	}
}

func GetOpenAIPresetConfig(preset ModelPreset) OpenAIConfig {
	switch preset {
	case PresetCreative:
		return OpenAIConfig{
			Temperature: 0.7,
			MaxTokens:   2048,
			TopP:        0.95,
		}
	case PresetBalanced:
		return OpenAIConfig{
			Temperature: 0.4,
			MaxTokens:   4096,
			TopP:        0.95,
		}
	default:
		return GetOpenAIPresetConfig(PresetBalanced)
	}
}

// GenerationStatus is the outcome variant of a generative call.
type GenerationStatus int

const (
	GenerationOK GenerationStatus = iota
	// GenerationUnavailable means no client is configured.
	GenerationUnavailable
	// GenerationFailed means the call was attempted and did not produce text.
	GenerationFailed
)

func (s GenerationStatus) String() string {
	switch s {
	case GenerationOK:
		return "ok"
	case GenerationUnavailable:
		return "unavailable"
	default:
		return "failed"
	}
}

// Generation is the result of one Generate call. Err is set unless Status is GenerationOK.
type Generation struct {
	Status       GenerationStatus
	Text         string
	Provider     string
	Model        string
	UsedFallback bool
	Err          error
}

func (g Generation) OK() bool {
	return g.Status == GenerationOK
}

// Generator is the generative client consumed by the insight engine.
type Generator interface {
	Configured() bool
	Generate(ctx context.Context, prompt string, preset ModelPreset) Generation
}
