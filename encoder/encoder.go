package encoder

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/combinatorial/tslcnf/clause"
	"github.com/combinatorial/tslcnf/condition"
	"github.com/combinatorial/tslcnf/coverage"
	"github.com/combinatorial/tslcnf/dimacs"
	"github.com/combinatorial/tslcnf/groupenc"
	"github.com/combinatorial/tslcnf/index"
	"github.com/combinatorial/tslcnf/ir"
	"github.com/combinatorial/tslcnf/propenc"
	"github.com/combinatorial/tslcnf/registry"
)

// Encoder runs the six cooperating passes over one ir.Spec and produces a
// DIMACS CNF artifact. It is single-use: Encode produces one serialized
// artifact and must not be called twice on the same Encoder.
type Encoder struct {
	spec *ir.Spec
	cfg  *config

	used bool
}

// New validates cfg against spec and returns a ready Encoder. Structural
// IR problems are not detected here — they surface from Encode, once the
// index builder walks the spec — but configuration problems (ConfigError:
// non-positive t or k, or t exceeding the group count) are caught eagerly
// since they need no pass to detect.
func New(spec *ir.Spec, opts ...Option) (*Encoder, error) {
	cfg := newConfig(opts...)

	if cfg.t <= 0 {
		return nil, ErrConfigError.New(fmt.Sprintf("t must be >= 1, got %d", cfg.t))
	}
	if cfg.k <= 0 {
		return nil, ErrConfigError.New(fmt.Sprintf("k must be >= 1, got %d", cfg.k))
	}
	groupCount := len(spec.Parameters) + len(spec.Environments)
	if cfg.t > groupCount {
		return nil, ErrConfigError.New(fmt.Sprintf("t=%d exceeds group count %d", cfg.t, groupCount))
	}

	return &Encoder{spec: spec, cfg: cfg}, nil
}

// Result is everything Encode produces: the serialized DIMACS CNF body
// and the auxiliary id→label mapping a downstream tool needs to decode a
// satisfying assignment into a test suite.
type Result struct {
	DIMACS []byte
	Labels map[registry.VarID]registry.Label
}

// Encode runs IR intake, index build, group constraints, property
// linking, condition compiling, and coverage encoding, in that order, and
// serializes the accumulated clauses to DIMACS CNF. All failures are
// structural and abort the pass; no partial artifact is ever returned.
func (e *Encoder) Encode() (Result, error) {
	if e.used {
		return Result{}, fmt.Errorf("encoder: Encode already called on this instance")
	}
	e.used = true

	idx, err := index.Build(e.spec)
	if err != nil {
		return Result{}, ErrMalformedIR.New(err.Error())
	}

	reg := registry.New()
	acc := clause.NewAccumulator()
	ov := registry.NewOptionVars(reg)
	pv := registry.NewPropertyVars(reg)

	groupenc.Emit(idx, ov, e.cfg.groupPolicy, e.cfg.k, acc)
	propenc.Emit(idx, ov, pv, e.cfg.antonyms, e.cfg.k, acc)

	if err := e.compileConditions(idx, reg, ov, pv, acc); err != nil {
		return Result{}, err
	}

	tuples, err := coverage.Enumerate(idx, e.cfg.t, reg)
	if err != nil {
		return Result{}, ErrConfigError.New(err.Error())
	}
	coverage.Emit(idx, ov, tuples, e.cfg.k, e.cfg.requireFullCoverage, reg, acc)

	comments := []dimacs.Comment{
		dimacs.Comment(fmt.Sprintf("cnf encoding (t=%d, k=%d)", e.cfg.t, e.cfg.k)),
	}
	body := dimacs.Write(comments, reg.NVars(), acc)

	return Result{DIMACS: body, Labels: reg.Labels()}, nil
}

// compileConditions runs the condition compiler for every option carrying
// a guard expression, over every slot, linking the compiled top variable
// back to the option.
func (e *Encoder) compileConditions(idx *index.Index, reg *registry.Registry, ov *registry.OptionVars, pv *registry.PropertyVars, acc *clause.Accumulator) error {
	for ord, opt := range idx.Options {
		if opt.Condition == "" {
			continue
		}
		for j := 1; j <= e.cfg.k; j++ {
			resolve := func(name string) (registry.VarID, bool) {
				propOrd, ok := idx.PropertyOrdinal[name]
				if !ok {
					return 0, false
				}
				return pv.Get(propOrd, name, j), true
			}

			onUnknown := func(name string) (registry.VarID, error) {
				if e.cfg.strictConditions {
					return 0, ErrUnknownProperty.New(fmt.Sprintf("%q (option %q)", name, opt.Name))
				}
				e.cfg.logger.WithFields(logrus.Fields{
					"property": name,
					"option":   opt.Name,
					"slot":     j,
				}).Warn("condition: leniently allocating unknown property")
				propOrd := idx.ResolveProperty(name)
				return pv.Get(propOrd, name, j), nil
			}

			result, err := condition.Compile(opt.Condition, reg, acc, resolve, onUnknown)
			if err != nil {
				if ErrUnknownProperty.Is(err) {
					return err
				}
				return ErrConditionSyntax.New(fmt.Sprintf("option %q: %s", opt.Name, err.Error()))
			}

			optVar := ov.Get(ord, opt.Name, j)
			condition.Link(optVar, result, acc)
		}
	}
	return nil
}
