// Package config persists the user's widget preferences between runs.
package config

const CurrentVersion = 1

// Config is the on-disk preferences file. Zero values mean "use the
// built-in default" so an empty file behaves like no file at all.
type Config struct {
	Version int         `json:"version"`
	Viewer  ViewerPrefs `json:"viewer"`
	Menu    MenuPrefs   `json:"menu"`
	Slider  SliderPrefs `json:"slider"`
}

type ViewerPrefs struct {
	ScrollSpeeds []int `json:"scrollSpeeds,omitempty"`
	LineNumbers  bool  `json:"lineNumbers,omitempty"`
}

type MenuPrefs struct {
	ShowIndexes *bool `json:"showIndexes,omitempty"`
}

type SliderPrefs struct {
	Step int `json:"step,omitempty"`
}
