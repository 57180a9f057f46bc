package bank

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the bank file major version this build understands.
const SupportedMajor = "v1"

//go:embed default.yaml
var defaultBank []byte

var loadDefault = sync.OnceValues(func() (*Bank, error) {
	return Parse(defaultBank)
})

// Default returns the bank compiled into the binary.
func Default() (*Bank, error) {
	b, err := loadDefault()
	if err != nil {
		return nil, fmt.Errorf("embedded bank: %w", err)
	}
	return b, nil
}

// Load reads and validates a bank file. YAML and JSON are both accepted.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a bank document, checks it against the bank schema and the
// structural invariants, and returns the immutable Bank.
func Parse(data []byte) (*Bank, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrMalformed, err)
	}
	if err := validateSchema(generic); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrMalformed, err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	b := New(doc.Title, doc.Version, doc.Modules)
	if err := b.Check(); err != nil {
		return nil, err
	}
	return b, nil
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: version %q is not a semantic version (want %s.x.y)", ErrMalformed, v, SupportedMajor)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("%w: unsupported bank version %s (this build reads %s)", ErrMalformed, v, SupportedMajor)
	}
	return nil
}
