package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

// Tier identifies which fallback level produced a result. Tiers are ordered
// by decreasing information fidelity; every one yields the same schema shape.
type Tier string

const (
	TierPrimary       Tier = "primary"
	TierLLMFallback   Tier = "llm-fallback"
	TierBasicFallback Tier = "basic-fallback"
	TierErrorFallback Tier = "error-fallback"
)

// EnrichmentPlan parameterizes one run of the fallback ladder.
//
// Preprocess is the external pre-analysis step (nil when the domain goes
// straight to the LLM). LocalContent supplies locally-available raw content
// for the LLM-only path, and also the primary content when Preprocess is nil.
// FallbackPrompt, when set, is the simpler prompt used on the LLM-only path.
type EnrichmentPlan[T any] struct {
	Preprocess     func(ctx context.Context) (string, error)
	LocalContent   func(ctx context.Context) (string, error)
	Prompt         func(content string) string
	FallbackPrompt func(content string) string
	Schema         models.Schema
	Fallback       func(tier Tier) T
	Temperature    float32
	CallTimeout    time.Duration
}

// RunEnrichment walks the ladder: pre-analysis, LLM structuring call, JSON
// extraction, normalization. Each tier is attempted exactly once. It never
// returns an error; the worst case is the plan's static fallback payload
// tagged with a degraded tier.
func RunEnrichment[T any](ctx context.Context, llm GeminiService, plan EnrichmentPlan[T]) (T, Tier) {
	tier := TierPrimary
	var content string

	if plan.Preprocess != nil {
		c, err := plan.Preprocess(ctx)
		if err != nil {
			log.Printf("⚠️  Pre-analysis step failed, switching to LLM-only path: %v\n", err)
			tier = TierLLMFallback
		} else {
			content = c
		}
	}

	if plan.Preprocess == nil || tier == TierLLMFallback {
		if plan.LocalContent == nil {
			return plan.Fallback(TierErrorFallback), TierErrorFallback
		}
		c, err := plan.LocalContent(ctx)
		if err != nil {
			log.Printf("⚠️  Local content unavailable: %v\n", err)
			d := degraded(tier)
			return plan.Fallback(d), d
		}
		content = c
	}

	prompt := plan.Prompt
	if tier == TierLLMFallback && plan.FallbackPrompt != nil {
		prompt = plan.FallbackPrompt
	}

	callCtx := ctx
	if plan.CallTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, plan.CallTimeout)
		defer cancel()
	}

	temperature := plan.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	raw, err := llm.GenerateText(callCtx, prompt(content), temperature)
	if err != nil {
		log.Printf("⚠️  Structuring call failed: %v\n", err)
		d := degraded(tier)
		return plan.Fallback(d), d
	}

	parsed, err := ExtractJSON(raw)
	if err != nil {
		log.Printf("⚠️  Model output carried no parsable JSON (%d chars)\n", len(raw))
		d := degraded(tier)
		return plan.Fallback(d), d
	}

	normalized := NormalizeMap(parsed, plan.Schema)
	normalized["source"] = string(tier)

	out, err := decodeResult[T](normalized)
	if err != nil {
		d := degraded(tier)
		return plan.Fallback(d), d
	}
	return out, tier
}

// degraded maps the tier we failed on to the tier that tags the static
// payload: failures on the primary path report basic-fallback, failures
// after already entering the LLM-only path report error-fallback.
func degraded(t Tier) Tier {
	if t == TierLLMFallback {
		return TierErrorFallback
	}
	return TierBasicFallback
}

func decodeResult[T any](m map[string]any) (T, error) {
	var out T
	b, err := json.Marshal(m)
	if err != nil {
		return out, fmt.Errorf("failed to encode normalized result: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("failed to decode normalized result: %w", err)
	}
	return out, nil
}
