package flows

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/afrisecure/ussd/pkg/domain"
	"gopkg.in/yaml.v3"
)

// packFlow is the YAML schema for a data-defined menu flow. Packs cover the
// common menu shape (option selection screens ending in a fixed text); flows
// needing custom validation or outcome logic stay in code.
type packFlow struct {
	ID      string      `yaml:"id"`
	Initial string      `yaml:"initial"`
	States  []packState `yaml:"states"`
}

type packState struct {
	ID       string            `yaml:"id"`
	Prompt   string            `yaml:"prompt,omitempty"`
	Options  map[string]string `yaml:"options,omitempty"` // input digit -> next state id
	Terminal bool              `yaml:"terminal,omitempty"`
	Final    string            `yaml:"final,omitempty"`
}

// ParsePack compiles one YAML document into a flow whose terminal outcome is
// a Notice carrying the declared final text.
func ParsePack(data []byte) (*domain.Flow, error) {
	var pf packFlow
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse flow pack: %w", err)
	}

	declared := make(map[string]bool, len(pf.States))
	for _, ps := range pf.States {
		declared[ps.ID] = true
	}

	f := &domain.Flow{
		ID:      pf.ID,
		Initial: pf.Initial,
		States:  make(map[string]domain.State, len(pf.States)),
	}

	for _, ps := range pf.States {
		if ps.Terminal {
			text := strings.TrimRight(ps.Final, "\n")
			f.States[ps.ID] = domain.State{
				Terminal: true,
				Outcome: func(domain.Session) (domain.Outcome, error) {
					return domain.Outcome{
						Kind:   domain.OutcomeNotice,
						Notice: &domain.NoticeResult{Text: text},
					}, nil
				},
				Final: func(domain.Session) string { return text },
			}
			continue
		}

		if len(ps.Options) == 0 {
			return nil, fmt.Errorf("flow %s: state %q has no options and is not terminal", pf.ID, ps.ID)
		}
		options := make([]string, 0, len(ps.Options))
		for digit, target := range ps.Options {
			if !declared[target] {
				return nil, fmt.Errorf("flow %s: state %q option %q points at undeclared state %q", pf.ID, ps.ID, digit, target)
			}
			options = append(options, digit)
		}
		sort.Strings(options)

		prompt := strings.TrimRight(ps.Prompt, "\n")
		next := ps.Options
		f.States[ps.ID] = domain.State{
			Prompt:   func(domain.Session) string { return prompt },
			Validate: oneOf(options...),
			Next: func(_ domain.Session, input string) domain.Target {
				return domain.Target{StateID: next[input]}
			},
		}
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadPackDir parses every .yaml/.yml file in dir into a flow.
func LoadPackDir(dir string) ([]*domain.Flow, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read flow pack dir: %w", err)
	}

	var loaded []*domain.Flow
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", e.Name(), err)
		}
		f, err := ParsePack(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		loaded = append(loaded, f)
	}
	return loaded, nil
}
