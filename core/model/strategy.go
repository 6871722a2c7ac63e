package model

import (
	"fmt"
	"strings"
)

// Strategy selects how densely rooms are packed.
type Strategy string

const (
	// StrategyDense fills each room up to its full effective capacity.
	StrategyDense Strategy = "dense"
	// StrategySparse caps any single course at half a room's effective
	// capacity, spreading its candidates across more rooms.
	StrategySparse Strategy = "sparse"
)

// ParseStrategy converts a configuration string into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyDense:
		return StrategyDense, nil
	case StrategySparse:
		return StrategySparse, nil
	default:
		return "", fmt.Errorf("unknown strategy %q: choose dense or sparse", s)
	}
}
