package bank

import (
	"fmt"
	"strings"
)

// MinOptions is the fewest options a question may offer.
const MinOptions = 2

// validateModules performs all structural checks on the given modules.
// Returns a combined error describing all problems found, or nil if valid.
func validateModules(modules []Module) error {
	var errs []string

	if len(modules) == 0 {
		errs = append(errs, "bank has no modules")
	}

	moduleIDs := make(map[string]bool, len(modules))
	for i, m := range modules {
		prefix := fmt.Sprintf("module %d", i)
		if m.ID == "" {
			errs = append(errs, fmt.Sprintf("%s: empty id", prefix))
		} else {
			prefix = fmt.Sprintf("module %q", m.ID)
			if moduleIDs[m.ID] {
				errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
			}
			moduleIDs[m.ID] = true
		}

		if len(m.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("%s has no questions", prefix))
		}

		questionIDs := make(map[string]bool, len(m.Questions))
		for j, q := range m.Questions {
			qprefix := fmt.Sprintf("%s question %d", prefix, j)
			if q.ID == "" {
				errs = append(errs, fmt.Sprintf("%s: empty id", qprefix))
			} else {
				qprefix = fmt.Sprintf("%s question %q", prefix, q.ID)
				if questionIDs[q.ID] {
					errs = append(errs, fmt.Sprintf("%s: duplicate question ID: %q", prefix, q.ID))
				}
				questionIDs[q.ID] = true
			}
			if len(q.Options) < MinOptions {
				errs = append(errs, fmt.Sprintf("%s: needs at least %d options, got %d", qprefix, MinOptions, len(q.Options)))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrMalformed, strings.Join(errs, "\n  "))
	}
	return nil
}
