package ui

import (
	"github.com/fatih/color"

	"gtt/internal/domain"
)

// Colorizer decorates report fields. It is picked once from configuration.
type Colorizer interface {
	// Time decorates a formatted elapsed time according to its tier
	Time(text string, tier domain.Tier) string
	// Status decorates an outcome tag
	Status(text string, outcome domain.Outcome) string
}

// NewColorizer returns an ANSI colorizer when enabled, otherwise a plain one
func NewColorizer(enabled bool) Colorizer {
	if enabled {
		return newANSIColorizer()
	}
	return plainColorizer{}
}

type plainColorizer struct{}

func (plainColorizer) Time(text string, _ domain.Tier) string { return text }

func (plainColorizer) Status(text string, _ domain.Outcome) string { return text }

// ansiColorizer always emits escape sequences, also when stdout is not a
// terminal
type ansiColorizer struct {
	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

func newANSIColorizer() *ansiColorizer {
	c := &ansiColorizer{
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
	}
	c.green.EnableColor()
	c.yellow.EnableColor()
	c.red.EnableColor()
	return c
}

func (c *ansiColorizer) Time(text string, tier domain.Tier) string {
	switch tier {
	case domain.TierGreen:
		return c.green.Sprint(text)
	case domain.TierYellow:
		return c.yellow.Sprint(text)
	default:
		return c.red.Sprint(text)
	}
}

func (c *ansiColorizer) Status(text string, outcome domain.Outcome) string {
	if outcome.IsFailure() {
		return c.red.Sprint(text)
	}
	return c.green.Sprint(text)
}
