package insight

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/habitflow/internal/model"
)

type fakeGenerator struct {
	text string
	err  error

	gotModel  string
	gotPrompt string
}

func (f *fakeGenerator) Generate(_ context.Context, model, prompt string) (string, error) {
	f.gotModel = model
	f.gotPrompt = prompt
	return f.text, f.err
}

func sampleHabits() []model.Habit {
	return []model.Habit{
		{ID: "h1", Name: "Water", Icon: "💧", CompletedDates: []string{"2024-05-01", "2024-04-30"}},
		{ID: "h2", Name: "Read", Icon: "📚"},
	}
}

func TestSummarizeLines(t *testing.T) {
	got := Summarize(sampleHabits())
	want := "- Water: Completed 2 times. Last active: 2024-05-01\n- Read: Completed 0 times. Last active: Never"
	if got != want {
		t.Fatalf("summary mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestBuildPromptIncludesSummary(t *testing.T) {
	prompt := BuildPrompt(sampleHabits())
	if !strings.Contains(prompt, "habit coach") {
		t.Fatalf("prompt missing coach instruction: %q", prompt)
	}
	if !strings.Contains(prompt, "- Water: Completed 2 times. Last active: 2024-05-01") {
		t.Fatalf("prompt missing habit summary: %q", prompt)
	}
}

func TestRequestWithoutGenerator(t *testing.T) {
	r := NewRequester(nil, "", 0, nil)
	if got := r.Request(context.Background(), sampleHabits()); got != FallbackNoKey {
		t.Fatalf("Request() = %q, want %q", got, FallbackNoKey)
	}
}

func TestRequestSuccess(t *testing.T) {
	gen := &fakeGenerator{text: "  Two days in a row on Water. Keep the chain going.  "}
	r := NewRequester(gen, "", 0, nil)

	got := r.Request(context.Background(), sampleHabits())
	if got != "Two days in a row on Water. Keep the chain going." {
		t.Fatalf("Request() = %q", got)
	}
	if gen.gotModel != DefaultModel {
		t.Fatalf("model = %q, want %q", gen.gotModel, DefaultModel)
	}
	if !strings.Contains(gen.gotPrompt, "User Habits:") {
		t.Fatalf("prompt missing habit section: %q", gen.gotPrompt)
	}
}

func TestRequestEmptyResponse(t *testing.T) {
	r := NewRequester(&fakeGenerator{text: "   "}, "", 0, nil)
	if got := r.Request(context.Background(), sampleHabits()); got != FallbackEmpty {
		t.Fatalf("Request() = %q, want %q", got, FallbackEmpty)
	}
}

func TestRequestError(t *testing.T) {
	r := NewRequester(&fakeGenerator{err: errors.New("boom")}, "", 0, nil)
	if got := r.Request(context.Background(), sampleHabits()); got != FallbackFailure {
		t.Fatalf("Request() = %q, want %q", got, FallbackFailure)
	}
}

func TestRequesterDefaults(t *testing.T) {
	r := NewRequester(nil, "", 0, nil)
	if r.model != DefaultModel {
		t.Fatalf("model = %q, want %q", r.model, DefaultModel)
	}
	if r.timeout != DefaultTimeout {
		t.Fatalf("timeout = %v, want %v", r.timeout, DefaultTimeout)
	}
	r = NewRequester(nil, "gemini-2.5-pro", 5*time.Second, nil)
	if r.model != "gemini-2.5-pro" || r.timeout != 5*time.Second {
		t.Fatalf("overrides not applied: %q %v", r.model, r.timeout)
	}
}

func TestNewGenAIGeneratorRequiresKey(t *testing.T) {
	if _, err := NewGenAIGenerator(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
