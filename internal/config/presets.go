package config

// Presets are named starting configurations.
var Presets = map[string]*Config{
	"classic": {
		Pattern: "glider", Rule: "conway", Wrap: true, TickMs: 20, PollMs: 20,
		Theme: "gray", OffsetX: 0, OffsetY: 0, StatusLine: true, Density: DefaultDensity,
		Generations: DefaultGenerations,
	},
	"gun": {
		Pattern: "gosper", Rule: "conway", Wrap: false, TickMs: 40, PollMs: 20, Auto: true,
		Theme: "retro", OffsetX: 2, OffsetY: 2, StatusLine: true, Density: DefaultDensity,
		Generations: 1000,
	},
	"chaos": {
		Pattern: "random", Rule: "highlife", Wrap: true, TickMs: 30, PollMs: 20, Auto: true,
		Theme: "sunset", Density: 0.35, Seed: 7, OffsetX: -1, OffsetY: -1, StatusLine: true,
		Generations: 2000,
	},
	"methuselah": {
		Pattern: "rpentomino", Rule: "conway", Wrap: true, TickMs: 20, PollMs: 20, Auto: true,
		Theme: "ocean", OffsetX: -1, OffsetY: -1, StatusLine: true, Density: DefaultDensity,
		Generations: 1200,
	},
	"maze": {
		Pattern: "random", Rule: "maze", Wrap: false, TickMs: 50, PollMs: 20, Auto: true,
		Theme: "minimal", Density: 0.05, Seed: 3, OffsetX: -1, OffsetY: -1, StatusLine: true,
		Generations: 300,
	},
}

// GetPreset returns a copy of the named preset with defaults for the fields
// presets leave empty, or nil if it does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	def := DefaultConfig()
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sortStrings(names)
	return names
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
