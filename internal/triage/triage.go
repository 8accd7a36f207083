// Package triage generates the bounded sequence of follow-up questions asked
// after a patient states their reason for visit. Generators are fallible
// collaborators; the intake engine degrades gracefully when they fail.
package triage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// PatientContext seeds question generation. Language carries the locale name
// so providers can answer in the patient's language.
type PatientContext struct {
	Name           string
	Age            int
	Gender         string
	ReasonForVisit string
	Language       string
}

// Question is one triage question with its multiple-choice options. Options
// is never empty for a question presented to the user.
type Question struct {
	Text    string
	Options []string
}

// Generator produces the question at a 0-based index for a patient context.
// Implementations must be deterministic per index for the same context, or
// back-navigation cannot re-ask the question the user is undoing.
type Generator interface {
	GetQuestion(ctx context.Context, pc PatientContext, index int) (Question, error)
}

// defaultQuestions is the fixed fallback set used when no AI provider is
// configured. Three questions, matching the triage loop cap.
var defaultQuestions = []Question{
	{
		Text:    "How long have you been experiencing these symptoms?",
		Options: []string{"Less than a week", "1-2 weeks", "2-4 weeks", "More than a month"},
	},
	{
		Text:    "On a scale of 1 to 10, how severe is your discomfort?",
		Options: []string{"1-3 (Mild)", "4-6 (Moderate)", "7-8 (Severe)", "9-10 (Very Severe)"},
	},
	{
		Text:    "Have you taken any medication for this condition?",
		Options: []string{"Yes, prescribed medication", "Yes, over-the-counter medication", "No medication", "Home remedies only"},
	},
}

// StaticGenerator serves the fixed fallback questions.
type StaticGenerator struct{}

func NewStaticGenerator() *StaticGenerator { return &StaticGenerator{} }

func (g *StaticGenerator) GetQuestion(_ context.Context, _ PatientContext, index int) (Question, error) {
	if index < 0 || index >= len(defaultQuestions) {
		return Question{}, fmt.Errorf("triage: no question at index %d", index)
	}
	return defaultQuestions[index], nil
}

// Failover tries a primary generator and falls back to a secondary when the
// primary errors. The fallback result is cached upstream like any other, so a
// flapping primary cannot produce divergent questions for the same index.
type Failover struct {
	primary   Generator
	secondary Generator
}

func NewFailover(primary, secondary Generator) *Failover {
	return &Failover{primary: primary, secondary: secondary}
}

func (f *Failover) GetQuestion(ctx context.Context, pc PatientContext, index int) (Question, error) {
	q, err := f.primary.GetQuestion(ctx, pc, index)
	if err == nil {
		return q, nil
	}
	if f.secondary == nil {
		return Question{}, err
	}
	q2, err2 := f.secondary.GetQuestion(ctx, pc, index)
	if err2 != nil {
		return Question{}, errors.Join(err, err2)
	}
	return q2, nil
}

// buildPrompt produces the instruction sent to an LLM provider for one
// question. The strict-JSON contract keeps parsing trivial on our side.
func buildPrompt(pc PatientContext, index int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a medical intake assistant gathering information before a consultation.\n")
	fmt.Fprintf(&b, "Patient: name %q, age %d, gender %s.\n", pc.Name, pc.Age, pc.Gender)
	fmt.Fprintf(&b, "Reason for visit: %s\n", pc.ReasonForVisit)
	if pc.Language != "" && pc.Language != "English" {
		fmt.Fprintf(&b, "Write the question and options in %s.\n", pc.Language)
	}
	fmt.Fprintf(&b, "Generate follow-up question number %d of 3 to clarify the patient's condition.\n", index+1)
	b.WriteString("Respond with ONLY a JSON object, no markdown, no prose, in this exact shape:\n")
	b.WriteString(`{"question": "...", "options": ["...", "...", "...", "..."]}` + "\n")
	b.WriteString("The options array must contain exactly 4 short answer choices.")
	return b.String()
}

var jsonBlockPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// parseQuestionJSON extracts the first JSON object from raw model output and
// decodes it. Models wrap JSON in markdown fences often enough that a bare
// Unmarshal is not good enough.
func parseQuestionJSON(raw string) (Question, error) {
	block := jsonBlockPattern.FindString(raw)
	if block == "" {
		return Question{}, fmt.Errorf("triage: no JSON object in model output: %q", truncate(raw, 120))
	}

	var payload struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
	}
	if err := json.Unmarshal([]byte(block), &payload); err != nil {
		return Question{}, fmt.Errorf("triage: decode model output: %w", err)
	}
	if strings.TrimSpace(payload.Question) == "" {
		return Question{}, errors.New("triage: model returned empty question")
	}
	if len(payload.Options) == 0 {
		return Question{}, errors.New("triage: model returned no options")
	}
	return Question{Text: strings.TrimSpace(payload.Question), Options: payload.Options}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
