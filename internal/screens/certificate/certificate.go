// Package certificate is the end-of-run screen: a preview of the learner's
// certificate with name entry, export and retry.
package certificate

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	cert "github.com/abhisek/consultquest/internal/certificate"
	engine "github.com/abhisek/consultquest/internal/quiz"
	"github.com/abhisek/consultquest/internal/router"
	"github.com/abhisek/consultquest/internal/screen"
	"github.com/abhisek/consultquest/internal/ui/components"
	"github.com/abhisek/consultquest/internal/ui/layout"
)

// MaxNameLength caps the recipient name typed on the certificate.
const MaxNameLength = 48

// exportTimeout bounds a single certificate write.
const exportTimeout = 10 * time.Second

// exportDoneMsg reports the outcome of an export started by this screen.
type exportDoneMsg struct {
	Path string
	Err  error
}

// CertificateScreen shows the final result of a run.
type CertificateScreen struct {
	session  *engine.Session
	exporter cert.Exporter
	logger   *zap.Logger
	cert     cert.Certificate

	name      components.TextInput
	exporting bool
	savedPath string
	errMsg    string

	// preview cache
	preview      string
	previewWidth int
	previewName  string
}

var _ screen.Screen = (*CertificateScreen)(nil)
var _ screen.KeyHintProvider = (*CertificateScreen)(nil)
var _ screen.InputCapturer = (*CertificateScreen)(nil)

// New creates a CertificateScreen for res. recipient pre-fills the name.
func New(sess *engine.Session, res engine.Result, exporter cert.Exporter, logger *zap.Logger, recipient string, now time.Time) *CertificateScreen {
	return &CertificateScreen{
		session:  sess,
		exporter: exporter,
		logger:   logger,
		cert:     cert.New(sess.Bank().Title(), res, recipient, now),
		name:     components.NewTextInput("Your name", recipient, MaxNameLength),
	}
}

// Certificate returns the certificate as it would be exported now.
func (c *CertificateScreen) Certificate() cert.Certificate {
	return c.cert
}

func (c *CertificateScreen) Init() tea.Cmd {
	return nil
}

func (c *CertificateScreen) Title() string {
	return "Certificate"
}

// CapturingInput reports whether keys belong to the name field.
func (c *CertificateScreen) CapturingInput() bool {
	return c.name.Focused()
}

func (c *CertificateScreen) KeyHints() []layout.KeyHint {
	if c.name.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save name"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "N", Description: "Name"},
		{Key: "D", Description: "Download"},
		{Key: "R", Description: "Retry"},
		{Key: "Esc", Description: "Home"},
	}
}

func (c *CertificateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		c.exporting = false
		if msg.Err != nil {
			c.errMsg = "Export failed: " + msg.Err.Error()
			c.logger.Error("certificate export failed", zap.Error(msg.Err))
			return c, nil
		}
		c.errMsg = ""
		c.savedPath = msg.Path
		c.logger.Info("certificate exported",
			zap.String("path", msg.Path),
			zap.String("certificate_id", c.cert.ID.String()),
			zap.String("tier", string(c.cert.Tier)),
		)
		return c, nil

	case tea.KeyPressMsg:
		if c.name.Focused() {
			return c, c.updateName(msg)
		}
		switch msg.String() {
		case "n":
			c.savedPath = ""
			return c, c.name.Focus()
		case "d", "enter":
			return c, c.export()
		case "r":
			c.session.Reset()
			c.logger.Info("run reset", zap.String("from", "certificate"))
			return c, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return c, nil
}

func (c *CertificateScreen) updateName(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		c.name.Blur()
		c.cert.Recipient = c.name.Value()
		return nil
	case "esc":
		c.name.Blur()
		c.name.SetValue(c.cert.Recipient)
		return nil
	}
	var cmd tea.Cmd
	c.name, cmd = c.name.Update(msg)
	return cmd
}

// export writes the certificate in the background.
func (c *CertificateScreen) export() tea.Cmd {
	if c.exporting {
		return nil
	}
	c.exporting = true
	c.errMsg = ""

	exporter := c.exporter
	snapshot := c.cert
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()
		path, err := exporter.Export(ctx, snapshot)
		return exportDoneMsg{Path: path, Err: err}
	}
}
