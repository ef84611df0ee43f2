package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/restaurant-sim/restaurant-sim/sim"
	"github.com/restaurant-sim/restaurant-sim/sim/trace"
)

// Options is the resolved CLI configuration. Defaults come from the
// environment (RESTSIM_*), then a scenario file, then explicit flags.
type Options struct {
	MenuPath   string `env:"RESTSIM_MENU"`
	TablesPath string `env:"RESTSIM_TABLES"`
	Seed       int64  `env:"RESTSIM_SEED"       envDefault:"42"`
	LogLevel   string `env:"RESTSIM_LOG"        envDefault:"warn"`
	Lang       string `env:"RESTSIM_LANG"       envDefault:"pl"`
	Currency   string `env:"RESTSIM_CURRENCY"   envDefault:"zł"`

	MinGroup        int    `env:"RESTSIM_MIN_GROUP"  envDefault:"1"`
	MaxGroup        int    `env:"RESTSIM_MAX_GROUP"  envDefault:"6"`
	Strategy        string `env:"RESTSIM_STRATEGY"   envDefault:"random"`
	DishesPerClient int    `env:"RESTSIM_DISHES"     envDefault:"1"`

	Groups      int     `env:"RESTSIM_GROUPS"       envDefault:"10"`
	ArrivalProb float64 `env:"RESTSIM_ARRIVAL_PROB" envDefault:"0.3"`
	MaxSteps    int     `env:"RESTSIM_MAX_STEPS"    envDefault:"10000"`
	TraceLevel  string  `env:"RESTSIM_TRACE"        envDefault:"none"`

	ScriptPath  string `env:"RESTSIM_SCRIPT"`
	Strict      bool   `env:"RESTSIM_STRICT"`
	MetricsPath string `env:"RESTSIM_METRICS_OUT"`
}

// envOptions returns the defaults overridden by any RESTSIM_* variables.
func envOptions() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("parse env: %w", err)
	}
	return opts, nil
}

// SimConfig projects the options onto the simulator configuration.
func (o Options) SimConfig() sim.SimConfig {
	return sim.SimConfig{
		Seed:       o.Seed,
		Groups:     sim.GroupConfig{MinSize: o.MinGroup, MaxSize: o.MaxGroup},
		Choice:     sim.ChoiceConfig{Strategy: o.Strategy, DishesPerClient: o.DishesPerClient},
		TraceLevel: trace.TraceLevel(o.TraceLevel),
	}
}

// Validate checks that the options describe a runnable simulation.
func (o Options) Validate() error {
	if o.MenuPath == "" {
		return errors.New("menu file not provided (--menu or RESTSIM_MENU)")
	}
	if o.TablesPath == "" {
		return errors.New("tables file not provided (--tables or RESTSIM_TABLES)")
	}
	if o.Groups < 0 {
		return fmt.Errorf("groups must be non-negative, got %d", o.Groups)
	}
	if o.ArrivalProb < 0 || o.ArrivalProb > 1 {
		return fmt.Errorf("arrival probability must be in [0, 1], got %g", o.ArrivalProb)
	}
	return o.SimConfig().Validate()
}

// Scenario is the YAML scenario file. Every key is optional; a set key
// overrides the environment, and an explicit flag overrides the file.
// Relative menu and tables paths are relative to the scenario file.
type Scenario struct {
	Menu      string             `yaml:"menu"`
	Tables    string             `yaml:"tables"`
	Seed      *int64             `yaml:"seed"`
	Groups    *ScenarioGroups    `yaml:"groups"`
	Choice    *ScenarioChoice    `yaml:"choice"`
	Autopilot *ScenarioAutopilot `yaml:"autopilot"`
	Trace     string             `yaml:"trace"`

	dir string // directory of the file the scenario was loaded from
}

// ScenarioGroups configures group generation.
type ScenarioGroups struct {
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
	Count   int `yaml:"count"`
}

// ScenarioChoice configures how clients pick dishes.
type ScenarioChoice struct {
	Strategy        string `yaml:"strategy"`
	DishesPerClient int    `yaml:"dishes_per_client"`
}

// ScenarioAutopilot configures the unscripted driver.
type ScenarioAutopilot struct {
	ArrivalProb *float64 `yaml:"arrival_prob"`
	MaxSteps    int      `yaml:"max_steps"`
}

// LoadScenario reads and validates a scenario file. Unknown keys are errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	sc.dir = filepath.Dir(path)
	return &sc, nil
}

// Validate rejects values that are set but out of range.
func (sc *Scenario) Validate() error {
	if g := sc.Groups; g != nil {
		if g.MinSize < 0 || g.MaxSize < 0 || g.Count < 0 {
			return fmt.Errorf("groups: sizes and count must be non-negative")
		}
		if g.MinSize > 0 && g.MaxSize > 0 && g.MaxSize < g.MinSize {
			return fmt.Errorf("groups: max_size %d is below min_size %d", g.MaxSize, g.MinSize)
		}
	}
	if c := sc.Choice; c != nil && !sim.IsValidChoiceStrategy(c.Strategy) {
		return fmt.Errorf("choice: unknown strategy %q", c.Strategy)
	}
	if a := sc.Autopilot; a != nil && a.ArrivalProb != nil && (*a.ArrivalProb < 0 || *a.ArrivalProb > 1) {
		return fmt.Errorf("autopilot: arrival_prob must be in [0, 1], got %g", *a.ArrivalProb)
	}
	if !trace.IsValidTraceLevel(sc.Trace) {
		return fmt.Errorf("unknown trace level %q", sc.Trace)
	}
	return nil
}

// Apply overlays the keys set in the scenario onto opts.
func (sc *Scenario) Apply(opts *Options) {
	if sc.Menu != "" {
		opts.MenuPath = sc.resolve(sc.Menu)
	}
	if sc.Tables != "" {
		opts.TablesPath = sc.resolve(sc.Tables)
	}
	if sc.Seed != nil {
		opts.Seed = *sc.Seed
	}
	if g := sc.Groups; g != nil {
		if g.MinSize > 0 {
			opts.MinGroup = g.MinSize
		}
		if g.MaxSize > 0 {
			opts.MaxGroup = g.MaxSize
		}
		if g.Count > 0 {
			opts.Groups = g.Count
		}
	}
	if c := sc.Choice; c != nil {
		if c.Strategy != "" {
			opts.Strategy = c.Strategy
		}
		if c.DishesPerClient > 0 {
			opts.DishesPerClient = c.DishesPerClient
		}
	}
	if a := sc.Autopilot; a != nil {
		if a.ArrivalProb != nil {
			opts.ArrivalProb = *a.ArrivalProb
		}
		if a.MaxSteps > 0 {
			opts.MaxSteps = a.MaxSteps
		}
	}
	if sc.Trace != "" {
		opts.TraceLevel = sc.Trace
	}
}

func (sc *Scenario) resolve(path string) string {
	if filepath.IsAbs(path) || sc.dir == "" {
		return path
	}
	return filepath.Join(sc.dir, path)
}

// overrideFromFlags copies every field whose flag was explicitly set from
// flagged into opts. changed is normally cmd.Flags().Changed.
func overrideFromFlags(changed func(name string) bool, flagged Options, opts *Options) {
	overrides := []struct {
		flag  string
		apply func()
	}{
		{"menu", func() { opts.MenuPath = flagged.MenuPath }},
		{"tables", func() { opts.TablesPath = flagged.TablesPath }},
		{"seed", func() { opts.Seed = flagged.Seed }},
		{"log", func() { opts.LogLevel = flagged.LogLevel }},
		{"lang", func() { opts.Lang = flagged.Lang }},
		{"currency", func() { opts.Currency = flagged.Currency }},
		{"min-group", func() { opts.MinGroup = flagged.MinGroup }},
		{"max-group", func() { opts.MaxGroup = flagged.MaxGroup }},
		{"strategy", func() { opts.Strategy = flagged.Strategy }},
		{"dishes", func() { opts.DishesPerClient = flagged.DishesPerClient }},
		{"groups", func() { opts.Groups = flagged.Groups }},
		{"arrival-prob", func() { opts.ArrivalProb = flagged.ArrivalProb }},
		{"max-steps", func() { opts.MaxSteps = flagged.MaxSteps }},
		{"trace", func() { opts.TraceLevel = flagged.TraceLevel }},
		{"script", func() { opts.ScriptPath = flagged.ScriptPath }},
		{"strict", func() { opts.Strict = flagged.Strict }},
		{"metrics-out", func() { opts.MetricsPath = flagged.MetricsPath }},
	}
	for _, o := range overrides {
		if changed(o.flag) {
			o.apply()
		}
	}
}

// resolveOptions layers env, the optional scenario file and explicit flags.
func resolveOptions(changed func(string) bool, flagged Options, scenarioPath string) (Options, error) {
	opts, err := envOptions()
	if err != nil {
		return Options{}, err
	}
	if scenarioPath != "" {
		sc, err := LoadScenario(scenarioPath)
		if err != nil {
			return Options{}, err
		}
		sc.Apply(&opts)
		logrus.Debugf("Applied scenario %s", scenarioPath)
	}
	overrideFromFlags(changed, flagged, &opts)
	return opts, nil
}
