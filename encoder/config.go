// Package encoder orchestrates the six encoder passes (IR intake, index
// build, group constraints, property linking, condition compiling,
// coverage encoding) into one Encode() call.
package encoder

import (
	"github.com/sirupsen/logrus"

	"github.com/combinatorial/tslcnf/groupenc"
)

// config holds the resolved encoder configuration. It is built with
// functional options: defaults first, then each Option applied in order,
// later options overriding earlier ones.
type config struct {
	t                   int
	k                   int
	groupPolicy         groupenc.Policy
	requireFullCoverage bool
	strictConditions    bool
	antonyms            map[string]string
	logger              *logrus.Logger
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		t:                   2,
		k:                   1,
		groupPolicy:         groupenc.PolicyAuto,
		requireFullCoverage: false,
		strictConditions:    true,
		antonyms:            map[string]string{},
		logger:              logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option customizes encoder configuration by mutating a config before
// encoding begins. Option constructors never panic on zero-value inputs;
// they only record what the caller asked for. Validation happens once, in
// New, which reports a non-positive t or k, or a t above the group count,
// through ErrConfigError; the group policy value is not checked there.
type Option func(cfg *config)

// WithT sets the interaction strength for coverage.
func WithT(t int) Option {
	return func(c *config) { c.t = t }
}

// WithK sets the number of slots (test-suite size).
func WithK(k int) Option {
	return func(c *config) { c.k = k }
}

// WithGroupPolicy overrides the per-group ALO/AMO resolution. Defaults to
// groupenc.PolicyAuto.
func WithGroupPolicy(p groupenc.Policy) Option {
	return func(c *config) { c.groupPolicy = p }
}

// WithFullCoverage enables asserting every coverage variable as a unit
// clause (the full-coverage goal).
func WithFullCoverage(v bool) Option {
	return func(c *config) { c.requireFullCoverage = v }
}

// WithStrictConditions controls whether an unknown guard atom aborts
// encoding (true, the default) or is leniently allocated as a fresh
// property-slot variable (false).
func WithStrictConditions(v bool) Option {
	return func(c *config) { c.strictConditions = v }
}

// WithAntonyms sets the symmetric property-exclusivity relation.
func WithAntonyms(m map[string]string) Option {
	return func(c *config) {
		cp := make(map[string]string, len(m))
		for k, v := range m {
			cp[k] = v
		}
		c.antonyms = cp
	}
}

// WithLogger overrides the logger warnings are emitted through. A nil
// logger is ignored (the default logrus.StandardLogger() is kept).
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
