// Package assist asks a language model for resume text and falls back to fixed answers when it cannot.
package assist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// FallbackSummary is returned whenever a summary cannot be generated.
const FallbackSummary = "Experienced professional with a strong background in technology and proven track record of delivering results."

const temperature = 0.7

// ErrDisabled is what a Bridge without a completer records for every call.
var ErrDisabled = errors.New("assist provider not configured")

// Request is a single-turn completion request.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Completer sends one prompt to a language model and returns its reply text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, req Request) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, req Request) (string, error) { return f(ctx, req) }

type Operation string

const (
	OpSummary            Operation = "summary"
	OpImproveDescription Operation = "improve_description"
	OpSuggestSkills      Operation = "suggest_skills"
)

// Observer is told about every call, including the ones that fell back.
type Observer interface {
	ObserveAssist(op Operation, d time.Duration, err error)
}

// ExperienceBrief is the part of a work experience a summary is generated from.
type ExperienceBrief struct {
	Company     string `json:"company" validate:"max=200"`
	Position    string `json:"position" validate:"max=200"`
	Description string `json:"description" validate:"max=5000"`
}

// Bridge never fails: any provider error yields the operation's fallback.
type Bridge struct {
	completer Completer
	observer  Observer
	log       *slog.Logger
}

// NewBridge builds a Bridge. A nil completer makes every call return its fallback.
func NewBridge(c Completer, obs Observer, log *slog.Logger) *Bridge {
	if log == nil {
		log = slog.Default()
	}
	return &Bridge{completer: c, observer: obs, log: log}
}

// GenerateSummary drafts a 2-3 sentence professional summary.
func (b *Bridge) GenerateSummary(ctx context.Context, experience []ExperienceBrief, skills []string) string {
	out, err := b.complete(ctx, OpSummary, Request{Prompt: SummaryPrompt(experience, skills), MaxTokens: 150})
	if err != nil {
		return FallbackSummary
	}
	return out
}

// ImproveDescription rewrites a job description; on failure the original comes back unchanged.
func (b *Bridge) ImproveDescription(ctx context.Context, description, jobTitle string) string {
	out, err := b.complete(ctx, OpImproveDescription, Request{Prompt: ImprovePrompt(description, jobTitle), MaxTokens: 200})
	if err != nil {
		return description
	}
	return out
}

// SuggestSkills returns skill names for a role; on failure the list is empty.
func (b *Bridge) SuggestSkills(ctx context.Context, jobTitle, industry string) []string {
	out, err := b.complete(ctx, OpSuggestSkills, Request{Prompt: SkillsPrompt(jobTitle, industry), MaxTokens: 100})
	if err != nil {
		return []string{}
	}
	return SplitSkills(out)
}

func (b *Bridge) complete(ctx context.Context, op Operation, req Request) (string, error) {
	req.Temperature = temperature

	start := time.Now()
	var (
		out string
		err error
	)
	if b.completer == nil {
		err = ErrDisabled
	} else {
		out, err = b.completer.Complete(ctx, req)
		out = strings.TrimSpace(out)
	}
	if b.observer != nil {
		b.observer.ObserveAssist(op, time.Since(start), err)
	}
	if err != nil {
		b.log.Warn("assist_fallback", "operation", string(op), "error", err.Error())
		return "", err
	}
	return out, nil
}

func SummaryPrompt(experience []ExperienceBrief, skills []string) string {
	lines := make([]string, 0, len(experience))
	for _, e := range experience {
		lines = append(lines, fmt.Sprintf("- %s at %s: %s", e.Position, e.Company, e.Description))
	}
	return "Based on the following work experience and skills, generate a professional summary for a resume:\n\n" +
		"Experience:\n" + strings.Join(lines, "\n") + "\n\n" +
		"Skills: " + strings.Join(skills, ", ") + "\n\n" +
		"Generate a concise, professional summary (2-3 sentences) that highlights key strengths and career focus."
}

func ImprovePrompt(description, jobTitle string) string {
	return fmt.Sprintf("Improve this job description for a %s position. Make it more professional, action-oriented, and quantifiable where possible:\n\n"+
		"Original: %s\n\n"+
		"Return only the improved description, focusing on achievements and impact.", jobTitle, description)
}

func SkillsPrompt(jobTitle, industry string) string {
	return fmt.Sprintf("Suggest 8-12 relevant technical and soft skills for a %s in the %s industry. Return as a comma-separated list.", jobTitle, industry)
}

// SplitSkills splits a comma-separated reply into trimmed, non-empty skill names.
func SplitSkills(reply string) []string {
	out := []string{}
	for _, tok := range strings.Split(reply, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
