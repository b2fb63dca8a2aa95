// Package selection tracks the four sweep axes and the readiness gate that
// decides whether a sweep may be submitted.
package selection

import (
	"fmt"
	"strings"
)

// Temperatures is the fixed temperature domain offered for selection.
var Temperatures = []float64{0.1, 0.3, 0.5, 0.7, 1.0}

// MaxTokens is the fixed max-token domain offered for selection.
var MaxTokens = []int{250, 512, 1024, 2048}

// Defaults pre-selected when the operator has made no choice yet.
const (
	DefaultTemperature = 0.5
	DefaultMaxTokens   = 1024
)

// PromptSlots is the number of free-text prompt fields offered.
const PromptSlots = 3

// State holds the current selection across all four axes. Prompts contain
// nonempty trimmed strings only; use SetPrompts to enforce that.
type State struct {
	Models       []string
	Prompts      []string
	Temperatures []float64
	MaxTokens    []int
}

// SetPrompts replaces the prompt axis with the trimmed, nonempty entries
// of raw, preserving order.
func (s *State) SetPrompts(raw []string) {
	s.Prompts = s.Prompts[:0]
	for _, p := range raw {
		if t := strings.TrimSpace(p); t != "" {
			s.Prompts = append(s.Prompts, t)
		}
	}
}

// Ready reports whether submission is permitted: every axis must have at
// least one entry.
func Ready(s State) bool {
	return len(s.Models) > 0 &&
		len(s.Prompts) > 0 &&
		len(s.Temperatures) > 0 &&
		len(s.MaxTokens) > 0
}

// Combinations returns the size of the sweep's combination space, the
// product of the four axis cardinalities.
func Combinations(s State) int {
	return len(s.Models) * len(s.Prompts) * len(s.Temperatures) * len(s.MaxTokens)
}

// SubmitLabel returns the label for the submit action: it reflects the
// number of selected models when the gate holds, and stays generic
// otherwise.
func SubmitLabel(s State) string {
	if !Ready(s) {
		return "Run Sweep"
	}
	if len(s.Models) == 1 {
		return "Run Sweep (1 model)"
	}
	return fmt.Sprintf("Run Sweep (%d models)", len(s.Models))
}
