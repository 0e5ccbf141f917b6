package config

import "sort"

var Presets = map[string]*Config{
	"quick": {
		Steps: 200, Runs: 1000, Bins: 30,
		NValues:      []int{50, 100, 200, 400},
		ShowProgress: true,
	},
	"standard": {
		Steps: DefaultSteps, Runs: DefaultRuns, Bins: DefaultBins,
		NValues:      []int{100, 300, 600, 1000},
		ShowProgress: true,
	},
	"precision": {
		Steps: 2000, Runs: 100000, Bins: 80,
		NValues:      []int{100, 300, 600, 1000, 2000, 4000},
		ShowProgress: true,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
