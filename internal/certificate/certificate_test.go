package certificate

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/consultquest/internal/quiz"
)

var issued = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	c := New("Consultant Journey", quiz.Result{Score: 72, Tier: quiz.TierExpert}, "  Robin  ", issued)

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, "Robin", c.Recipient)
	assert.Equal(t, 72, c.Score)
	assert.Equal(t, quiz.TierExpert, c.Tier)
	assert.Equal(t, "Seasoned Consultant", c.Title)
	assert.Equal(t, "EXPERT", c.Badge)
	assert.Equal(t, "SENIOR", c.Ribbon)
	assert.NotEmpty(t, c.Blurb)
}

func TestNew_TierFollowsScore(t *testing.T) {
	c := New("p", quiz.Result{Score: 80, Tier: quiz.TierTrainee}, "", issued)
	assert.Equal(t, quiz.TierLegend, c.Tier)
}

func TestFileName(t *testing.T) {
	c := New("p", quiz.Result{Score: 59}, "", issued)
	assert.Equal(t, "certificate_trainee_2026-03-14.md", c.FileName(FormatMarkdown))
	assert.Equal(t, "certificate_trainee_2026-03-14.json", c.FileName(FormatJSON))
}

func TestMarkdown(t *testing.T) {
	c := New("Consultant Journey", quiz.Result{Score: 85}, "", issued)
	md := c.Markdown()

	assert.Contains(t, md, "# Certificate of Completion")
	assert.Contains(t, md, "**Consultant Journey**")
	assert.Contains(t, md, "Anonymous Consultant")
	assert.Contains(t, md, "## Legendary Consultant")
	assert.Contains(t, md, "| 85 / 100 | LEGEND | 2026-03-14 |")
	assert.Contains(t, md, c.ID.String())
}

func TestJSON(t *testing.T) {
	c := New("p", quiz.Result{Score: 64}, "Sam", issued)
	data, err := c.JSON()
	require.NoError(t, err)

	var decoded Certificate
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, c.IssuedAt.Equal(decoded.IssuedAt))

	decoded.IssuedAt = c.IssuedAt
	assert.Equal(t, c, decoded)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"JSON", FormatJSON, false},
		{"pdf", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFileExporter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "certs")
	exp, err := NewFileExporter(dir, "json")
	require.NoError(t, err)

	c := New("p", quiz.Result{Score: 70}, "Sam", issued)
	path, err := exp.Export(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "certificate_expert_2026-03-14.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Certificate
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c.ID, decoded.ID)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileExporter_CancelledContext(t *testing.T) {
	exp := &FileExporter{Dir: t.TempDir(), Format: FormatMarkdown}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exp.Export(ctx, New("p", quiz.Result{Score: 60}, "", issued))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFileExporter_BadFormat(t *testing.T) {
	_, err := NewFileExporter(t.TempDir(), "pdf")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	c := New("Consultant Journey", quiz.Result{Score: 61}, "Robin", issued)
	out, err := Render(c, 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Novice")
	assert.Contains(t, out, "Robin")
}
