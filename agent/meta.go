package agent

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Meta holds an agent's key=value configuration pairs, e.g.
// "name=mcts role=black seed=7 c=0.3 n=1000". Unknown keys are kept; agents
// read the ones they understand. Malformed values surface as errors from the
// typed getters, never as silent defaults.
type Meta map[string]string

// ParseMeta splits a whitespace-separated key=value argument string. A token
// without '=' becomes a presence flag with an empty value (e.g. "random").
func ParseMeta(args string) Meta {
	m := make(Meta)
	for _, pair := range strings.Fields(args) {
		key, value, _ := strings.Cut(pair, "=")
		m[key] = value
	}
	return m
}

// Has reports whether key was supplied at all.
func (m Meta) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// String returns the value for key, or def when absent.
func (m Meta) String(key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Int parses key as an integer, returning def when absent.
func (m Meta) Int(key string, def int) (int, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("meta key %q: %w", key, err)
	}
	return n, nil
}

// Float parses key as a float, returning def when absent.
func (m Meta) Float(key string, def float64) (float64, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("meta key %q: %w", key, err)
	}
	return f, nil
}

// Durations parses key as a comma-separated list of millisecond allowances,
// returning def when absent.
func (m Meta) Durations(key string, def []time.Duration) ([]time.Duration, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	parts := strings.Split(v, ",")
	schedule := make([]time.Duration, 0, len(parts))
	for _, p := range parts {
		ms, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("meta key %q: %w", key, err)
		}
		if ms <= 0 {
			return nil, fmt.Errorf("meta key %q: allowance must be positive, got %d", key, ms)
		}
		schedule = append(schedule, time.Duration(ms)*time.Millisecond)
	}
	return schedule, nil
}
