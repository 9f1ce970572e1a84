package lumina

import (
	"io"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

//
// Sink is where PRINTLINE and friends write.  Kept as a bare
// io.Writer rather than a named interface with extra methods, so any
// embedder can hand the Context a file, a buffer, or os.Stdout
// directly
//

type Sink = io.Writer

//
// Config is the ambient configuration layer, grounded on the
// teacher's own startup flags (basic.go's flag.Parse block) but
// reworked around a YAML file the way the rest of the retrieved pack
// loads configuration (gopkg.in/yaml.v3), merged over built-in
// defaults with dario.cat/mergo rather than basic.go's manual
// if-zero-then-default checks
//

type Config struct {
	Trace bool `yaml:"trace"`
	Dump  bool `yaml:"dump"`

	DisabledAtStartup []string `yaml:"disabled_at_startup"`

	Output Sink `yaml:"-"`

	// StatementBudget caps the number of statement executions (top-
	// level and body statements alike, as counted by
	// RunStats.StatementsExecuted) before the run is aborted as
	// runaway, 0 means unbounded.  The count is checked only before
	// each top-level step, so a loop inside one body is not cut short.
	// Exists because REVERSE can turn a finite top-level list into an
	// unbounded loop with no syntactic signal of that
	StatementBudget int `yaml:"statement_budget"`
}

func DefaultConfig() Config {
	return Config{
		Output:          os.Stdout,
		StatementBudget: 0,
	}
}

// LoadConfig reads a YAML config file at path and merges it over
// DefaultConfig(), file values winning on conflict.  Output is never
// set from YAML (there's no sane textual representation of an
// io.Writer); callers that want anything but stdout set cfg.Output
// themselves after LoadConfig returns
func LoadConfig(path string) (Config, error) {

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return cfg, err
	}

	if err := mergo.Merge(&cfg, fromFile, mergo.WithOverride); err != nil {
		return cfg, err
	}

	cfg.Output = os.Stdout

	return cfg, nil
}
