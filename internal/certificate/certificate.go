// Package certificate turns a finished quiz result into a completion
// certificate and writes it out as a file.
package certificate

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/consultquest/internal/quiz"
)

// Format is a certificate file format.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

// ParseFormat maps a config value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatMarkdown, "markdown":
		return FormatMarkdown, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown certificate format: %q", s)
	}
}

// DateLayout is how issue dates appear on certificates and file names.
const DateLayout = "2006-01-02"

// Certificate is the exported record of a completed run.
type Certificate struct {
	ID        uuid.UUID `json:"id"`
	Program   string    `json:"program"`
	Recipient string    `json:"recipient,omitempty"`
	Score     int       `json:"score"`
	Tier      quiz.Tier `json:"tier"`
	Title     string    `json:"title"`
	Badge     string    `json:"badge"`
	Ribbon    string    `json:"ribbon"`
	Blurb     string    `json:"blurb"`
	IssuedAt  time.Time `json:"issued_at"`
}

// New builds a certificate for res. The tier is derived again from the
// score so the two can never disagree.
func New(program string, res quiz.Result, recipient string, now time.Time) Certificate {
	tier := quiz.Classify(res.Score)
	return Certificate{
		ID:        uuid.New(),
		Program:   program,
		Recipient: strings.TrimSpace(recipient),
		Score:     res.Score,
		Tier:      tier,
		Title:     tier.DisplayName(),
		Badge:     tier.Badge(),
		Ribbon:    tier.Ribbon(),
		Blurb:     tier.Blurb(),
		IssuedAt:  now,
	}
}

// FileName returns certificate_<tier>_<date>.<ext>.
func (c Certificate) FileName(f Format) string {
	return fmt.Sprintf("certificate_%s_%s.%s", c.Tier, c.IssuedAt.Format(DateLayout), f)
}

// Markdown renders the certificate as a markdown document.
func (c Certificate) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Certificate of Completion\n\n")
	if c.Program != "" {
		fmt.Fprintf(&b, "**%s**\n\n", c.Program)
	}
	fmt.Fprintf(&b, "> %s · %s\n\n", c.Ribbon, c.Badge)

	recipient := c.Recipient
	if recipient == "" {
		recipient = "Anonymous Consultant"
	}
	fmt.Fprintf(&b, "This certifies that **%s** has completed the training program and earned the title\n\n", recipient)
	fmt.Fprintf(&b, "## %s\n\n", c.Title)
	fmt.Fprintf(&b, "%s\n\n", c.Blurb)

	b.WriteString("| Final score | Tier | Issued |\n")
	b.WriteString("|---|---|---|\n")
	fmt.Fprintf(&b, "| %d / %d | %s | %s |\n\n", c.Score, quiz.MaxScore, c.Badge, c.IssuedAt.Format(DateLayout))

	fmt.Fprintf(&b, "Certificate ID: `%s`\n", c.ID)
	return b.String()
}

// JSON renders the certificate as indented JSON.
func (c Certificate) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal certificate: %w", err)
	}
	return append(data, '\n'), nil
}

// Encode renders the certificate in format f.
func (c Certificate) Encode(f Format) ([]byte, error) {
	switch f {
	case FormatMarkdown:
		return []byte(c.Markdown()), nil
	case FormatJSON:
		return c.JSON()
	default:
		return nil, fmt.Errorf("unknown certificate format: %q", f)
	}
}
