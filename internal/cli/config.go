package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrUnknownAlgorithm is returned for an --algo value no searcher answers to.
var ErrUnknownAlgorithm = errors.New("cli: unknown algorithm")

// ErrUnknownPolicy is returned for a --policy value other than full or actions.
var ErrUnknownPolicy = errors.New("cli: unknown result policy")

// Config holds the settings shared by every command. It can be loaded from a
// YAML file; flags given explicitly on the command line take precedence.
type Config struct {
	Algorithm        string   `yaml:"algorithm"`
	Policy           string   `yaml:"policy"`
	MaxCost          *float64 `yaml:"max_cost,omitempty"`
	MaxIterations    int      `yaml:"max_iterations"`
	ImprovedAccuracy bool     `yaml:"improved_accuracy"`
	Heuristic        string   `yaml:"heuristic"`
	Trace            bool     `yaml:"trace"`
	Verbose          bool     `yaml:"verbose"`
}

// DefaultConfig returns A* with the full-path policy and improved accuracy on.
func DefaultConfig() Config {
	return Config{
		Algorithm:        "astar",
		Policy:           "full",
		ImprovedAccuracy: true,
		Heuristic:        "manhattan",
	}
}

// LoadConfig reads a YAML file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// bindFlags registers the shared flags on fs, defaulting to cfg.
func bindFlags(fs *pflag.FlagSet, cfg *Config, maxCost *float64, configPath *string) {
	fs.StringVarP(configPath, "config", "c", "", "Path to a YAML config file")
	fs.StringVarP(&cfg.Algorithm, "algo", "a", cfg.Algorithm, "Search algorithm: astar, idastar, ieastar, bidir")
	fs.StringVarP(&cfg.Policy, "policy", "p", cfg.Policy, "Result policy: full or actions")
	fs.Float64Var(maxCost, "max-cost", -1, "Maximum path cost (negative means unbounded)")
	fs.IntVar(&cfg.MaxIterations, "max-iterations", cfg.MaxIterations, "Iteration bound for idastar/ieastar (0 = unbounded)")
	fs.BoolVar(&cfg.ImprovedAccuracy, "improved-accuracy", cfg.ImprovedAccuracy, "Scan both frontiers for the cheapest meeting point (bidir)")
	fs.StringVar(&cfg.Heuristic, "heuristic", cfg.Heuristic, "Heuristic: manhattan, misplaced (puzzle), octile (grid), zero")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "Print an OpenTelemetry span per search to stderr")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Enable debug logging")
}

// resolve merges the config file under the explicitly set flags.
func resolve(fs *pflag.FlagSet, flags Config, maxCost float64, configPath string) (Config, error) {
	cfg := flags
	if configPath != "" {
		file, err := LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = file
		overlay := map[string]func(){
			"algo":              func() { cfg.Algorithm = flags.Algorithm },
			"policy":            func() { cfg.Policy = flags.Policy },
			"max-iterations":    func() { cfg.MaxIterations = flags.MaxIterations },
			"improved-accuracy": func() { cfg.ImprovedAccuracy = flags.ImprovedAccuracy },
			"heuristic":         func() { cfg.Heuristic = flags.Heuristic },
			"trace":             func() { cfg.Trace = flags.Trace },
			"verbose":           func() { cfg.Verbose = flags.Verbose },
		}
		for name, apply := range overlay {
			if fs.Changed(name) {
				apply()
			}
		}
	}
	if fs.Changed("max-cost") || (configPath == "" && maxCost >= 0) {
		if maxCost >= 0 {
			mc := maxCost
			cfg.MaxCost = &mc
		} else {
			cfg.MaxCost = nil
		}
	}
	switch cfg.Algorithm {
	case "astar", "idastar", "ieastar", "bidir":
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}
	switch cfg.Policy {
	case "full", "actions":
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownPolicy, cfg.Policy)
	}

	return cfg, nil
}
