// Package insight produces short motivational coaching text for the
// user's habit history via the Gemini API. A Requester never returns an
// error to callers: every failure mode collapses to a fixed fallback
// message so the UI always has something to show.
package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/sandeepkv93/habitflow/internal/model"
)

const (
	// DefaultModel is the generation model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds a single generation request.
	DefaultTimeout = 30 * time.Second
)

// Fallback messages. These are returned verbatim; callers display them
// exactly like generated text.
const (
	FallbackNoKey   = "يرجى تكوين مفتاح API للحصول على رؤى."
	FallbackEmpty   = "Keep going! You are doing great."
	FallbackFailure = "Could not generate insights at this moment."
)

var errEmptyAPIKey = errors.New("insight: empty API key")

// Generator abstracts the text-generation backend so Requester can be
// tested without network access.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// GenAIGenerator generates text through the Google GenAI client.
type GenAIGenerator struct {
	client *genai.Client
}

// NewGenAIGenerator builds a generator from an API key.
func NewGenAIGenerator(ctx context.Context, apiKey string) (*GenAIGenerator, error) {
	if apiKey == "" {
		return nil, errEmptyAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("insight: create client: %w", err)
	}
	return &GenAIGenerator{client: client}, nil
}

// Generate runs a single text generation call.
func (g *GenAIGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("insight: generate: %w", err)
	}
	return resp.Text(), nil
}

// Requester turns a habit collection into a coaching message. A nil
// generator means no API key is configured; Request then returns
// FallbackNoKey without making any call.
type Requester struct {
	gen     Generator
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewRequester wires a Requester. model and timeout fall back to the
// package defaults when zero; a nil logger is replaced with a no-op.
func NewRequester(gen Generator, model string, timeout time.Duration, logger *zap.Logger) *Requester {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Requester{gen: gen, model: model, timeout: timeout, logger: logger}
}

// Summarize renders one line per habit with its completion count and
// the most recent completion date, or "Never".
func Summarize(habits []model.Habit) string {
	lines := make([]string, 0, len(habits))
	for _, h := range habits {
		last := h.LastCompleted()
		if last == "" {
			last = "Never"
		}
		lines = append(lines, fmt.Sprintf("- %s: Completed %d times. Last active: %s", h.Name, len(h.CompletedDates), last))
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt assembles the coaching prompt for a habit collection.
func BuildPrompt(habits []model.Habit) string {
	var b strings.Builder
	b.WriteString("You are a wise and encouraging habit coach.\n")
	b.WriteString("Analyze the following user habits and provide a short, motivating insight (max 2 sentences) in English (or Arabic if the habit names seem Arabic).\n")
	b.WriteString("Focus on consistency and streaks.\n\n")
	b.WriteString("User Habits:\n")
	b.WriteString(Summarize(habits))
	return b.String()
}

// Request produces the insight text for the given habits. It always
// returns a displayable string: generated text on success, FallbackNoKey
// when no generator is configured, FallbackEmpty when the backend
// returns nothing, FallbackFailure on any error.
func (r *Requester) Request(ctx context.Context, habits []model.Habit) string {
	if r.gen == nil {
		return FallbackNoKey
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.gen.Generate(ctx, r.model, BuildPrompt(habits))
	if err != nil {
		r.logger.Warn("insight generation failed", zap.Error(err))
		return FallbackFailure
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackEmpty
	}
	return text
}
