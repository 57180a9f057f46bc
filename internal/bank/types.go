package bank

// Option is one answer to a Question along with what happens when it is chosen.
type Option struct {
	Text       string   `yaml:"text" json:"text"`
	ResultText string   `yaml:"result" json:"result"`
	TrustDelta int      `yaml:"trust" json:"trust"`
	TeamDelta  int      `yaml:"team" json:"team"`
	Hint       string   `yaml:"hint" json:"hint"`
	CaseStudy  string   `yaml:"case" json:"case"`
	Links      []string `yaml:"links" json:"links"`
}

// Question is a single scenario prompt. Options are authored in no
// particular order; presentation order is decided at play time.
type Question struct {
	ID      string   `yaml:"id" json:"id"`
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Options []Option `yaml:"options" json:"options"`
}

// Module is a named, ordered group of questions sharing a theme.
type Module struct {
	ID        string     `yaml:"id" json:"id"`
	Title     string     `yaml:"title" json:"title"`
	Intro     string     `yaml:"intro" json:"intro"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// MinutesPerQuestion is the time estimate shown on module cards.
const MinutesPerQuestion = 2

// EstimatedMinutes returns a rough time to complete the module.
func (m *Module) EstimatedMinutes() int {
	return len(m.Questions) * MinutesPerQuestion
}

// document is the on-disk shape of a bank file.
type document struct {
	Version string   `yaml:"version"`
	Title   string   `yaml:"title"`
	Modules []Module `yaml:"modules"`
}
