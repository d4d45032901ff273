// Package strategyfile loads a simulation lineup from an HCL file, letting
// a batch pick strategies and per-strategy betting parameters without
// recompiling.
//
// The format is one block per strategy, with an optional defaults block:
//
//	defaults {
//	  margin     = 2.0
//	  deviations = "s17"
//	}
//
//	strategy "HiLo" {
//	  margin = 4.0
//	}
//
//	strategy "KO" {
//	  deviations = "h17"
//	}
package strategyfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/strategy"
)

// File is the decoded strategy file.
type File struct {
	Defaults   *Defaults `hcl:"defaults,block"`
	Strategies []Entry   `hcl:"strategy,block"`
}

// Defaults applies to every strategy block that does not override it.
type Defaults struct {
	Margin     float64 `hcl:"margin,optional"`
	Deviations string  `hcl:"deviations,optional"`
}

// Entry selects one registered strategy with optional overrides.
type Entry struct {
	Name       string   `hcl:"name,label"`
	Margin     *float64 `hcl:"margin,optional"`
	Deviations *string  `hcl:"deviations,optional"`
}

// Load reads and decodes a strategy file from disk.
func Load(filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("strategyfile: parsing %s: %s", filename, diags.Error())
	}
	return decode(file.Body)
}

// LoadBytes decodes a strategy file from memory. The filename only labels
// diagnostics.
func LoadBytes(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("strategyfile: parsing %s: %s", filename, diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("strategyfile: decoding: %s", diags.Error())
	}
	return &f, nil
}

// Build constructs the lineup the file describes, resolving each entry
// against the strategy registry.
func (f *File) Build() ([]strategy.Strategy, error) {
	if len(f.Strategies) == 0 {
		return nil, fmt.Errorf("strategyfile: no strategy blocks")
	}

	defaults := Defaults{Margin: 2}
	if f.Defaults != nil {
		if f.Defaults.Margin > 0 {
			defaults.Margin = f.Defaults.Margin
		}
		defaults.Deviations = f.Defaults.Deviations
	}

	set := make([]strategy.Strategy, 0, len(f.Strategies))
	seen := make(map[string]bool, len(f.Strategies))
	for _, e := range f.Strategies {
		if seen[e.Name] {
			return nil, fmt.Errorf("strategyfile: duplicate strategy %q", e.Name)
		}
		seen[e.Name] = true

		p := strategy.Params{Margin: defaults.Margin, Deviations: defaults.Deviations}
		if e.Margin != nil {
			p.Margin = *e.Margin
		}
		if e.Deviations != nil {
			p.Deviations = *e.Deviations
		}

		s, err := strategy.Build(e.Name, p)
		if err != nil {
			return nil, err
		}
		set = append(set, s)
	}
	return set, nil
}
