package assist

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeapi/internal/logging"
)

type stubCompleter struct {
	reply string
	err   error
	last  Request
}

func (s *stubCompleter) Complete(_ context.Context, req Request) (string, error) {
	s.last = req
	return s.reply, s.err
}

type observation struct {
	op  Operation
	err error
}

type recordingObserver struct {
	mu  sync.Mutex
	got []observation
}

func (r *recordingObserver) ObserveAssist(op Operation, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, observation{op, err})
}

func TestBridge_GenerateSummary(t *testing.T) {
	exp := []ExperienceBrief{{Company: "Acme", Position: "Engineer", Description: "Built APIs"}}

	t.Run("reply is trimmed", func(t *testing.T) {
		c := &stubCompleter{reply: "  Seasoned engineer.  \n"}
		obs := &recordingObserver{}
		b := NewBridge(c, obs, logging.Discard())

		got := b.GenerateSummary(context.Background(), exp, []string{"Go", "SQL"})

		assert.Equal(t, "Seasoned engineer.", got)
		assert.Equal(t, 150, c.last.MaxTokens)
		assert.InDelta(t, 0.7, c.last.Temperature, 1e-6)
		assert.Contains(t, c.last.Prompt, "- Engineer at Acme: Built APIs")
		assert.Contains(t, c.last.Prompt, "Skills: Go, SQL")
		require.Len(t, obs.got, 1)
		assert.Equal(t, OpSummary, obs.got[0].op)
		assert.NoError(t, obs.got[0].err)
	})

	t.Run("provider error falls back", func(t *testing.T) {
		obs := &recordingObserver{}
		b := NewBridge(&stubCompleter{err: errors.New("boom")}, obs, logging.Discard())

		assert.Equal(t, FallbackSummary, b.GenerateSummary(context.Background(), exp, nil))
		require.Len(t, obs.got, 1)
		assert.Error(t, obs.got[0].err)
	})

	t.Run("no provider falls back", func(t *testing.T) {
		obs := &recordingObserver{}
		b := NewBridge(nil, obs, logging.Discard())

		assert.Equal(t, FallbackSummary, b.GenerateSummary(context.Background(), exp, nil))
		require.Len(t, obs.got, 1)
		assert.ErrorIs(t, obs.got[0].err, ErrDisabled)
	})
}

func TestBridge_ImproveDescription(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  string
	}{
		{name: "improved", reply: "Led a team of 5.", want: "Led a team of 5."},
		{name: "failure returns input", err: errors.New("timeout"), want: "did stuff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &stubCompleter{reply: tt.reply, err: tt.err}
			b := NewBridge(c, nil, logging.Discard())

			got := b.ImproveDescription(context.Background(), "did stuff", "Engineer")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, 200, c.last.MaxTokens)
			assert.True(t, strings.HasPrefix(c.last.Prompt, "Improve this job description for a Engineer position."))
			assert.Contains(t, c.last.Prompt, "Original: did stuff")
		})
	}
}

func TestBridge_SuggestSkills(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  []string
	}{
		{name: "split and trimmed", reply: "Go, SQL ,  Docker", want: []string{"Go", "SQL", "Docker"}},
		{name: "empty tokens dropped", reply: "Go,, ,SQL,", want: []string{"Go", "SQL"}},
		{name: "failure is empty", err: errors.New("down"), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &stubCompleter{reply: tt.reply, err: tt.err}
			b := NewBridge(c, nil, logging.Discard())

			got := b.SuggestSkills(context.Background(), "Data Engineer", "Finance")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, 100, c.last.MaxTokens)
			assert.Equal(t, "Suggest 8-12 relevant technical and soft skills for a Data Engineer in the Finance industry. Return as a comma-separated list.", c.last.Prompt)
		})
	}
}

func TestSummaryPrompt(t *testing.T) {
	got := SummaryPrompt([]ExperienceBrief{
		{Company: "A", Position: "Dev", Description: "x"},
		{Company: "B", Position: "Lead", Description: "y"},
	}, []string{"Go"})

	want := "Based on the following work experience and skills, generate a professional summary for a resume:\n\n" +
		"Experience:\n- Dev at A: x\n- Lead at B: y\n\n" +
		"Skills: Go\n\n" +
		"Generate a concise, professional summary (2-3 sentences) that highlights key strengths and career focus."
	assert.Equal(t, want, got)
}
