package laws

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Result is the outcome of one law across a run.
type Result struct {
	Law string
	// Iterations counts the samples checked; checking stops at the first failure.
	Iterations int
	Err        error
}

// Passed reports whether the law held for every sample checked.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Report collects the results of a Suite run.
type Report struct {
	Results []Result
}

// Failed returns the results whose law did not hold.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err joins the errors of every failed law, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Law, res.Err))
	}
	return errors.Join(errs...)
}

// Option configures a Suite.
type Option func(*Suite)

// WithLogger sets the logger receiving one event per law.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Suite) {
		s.logger = logger
	}
}

// Suite checks the selected laws over sampled values.
type Suite struct {
	cfg    Config
	laws   []law
	logger zerolog.Logger
}

// NewSuite creates a Suite from a validated configuration.
func NewSuite(cfg Config, opts ...Option) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Suite{
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
	for _, l := range catalogue {
		if cfg.selects(l.name) {
			s.laws = append(s.laws, l)
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run checks every selected law against Config.Iterations samples. If ctx
// is cancelled between samples the partial report is returned with
// ctx.Err().
func (s *Suite) Run(ctx context.Context) (Report, error) {
	results := make([]Result, len(s.laws))
	for i, l := range s.laws {
		results[i].Law = l.name
	}

	for i := 0; i < s.cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			s.logger.Warn().Err(err).Int("completed", i).Msg("law run interrupted")
			return Report{Results: results}, err
		}

		seed := s.cfg.Seed + i
		smp := samples.Example(seed)
		for j, l := range s.laws {
			if results[j].Err != nil {
				continue
			}
			results[j].Iterations++
			if err := l.check(smp); err != nil {
				results[j].Err = fmt.Errorf("seed %d: %w", seed, err)
			}
		}
	}

	for _, res := range results {
		if res.Passed() {
			s.logger.Info().
				Str("law", res.Law).
				Int("iterations", res.Iterations).
				Msg("law holds")
			continue
		}
		s.logger.Error().
			Str("law", res.Law).
			Int("iterations", res.Iterations).
			Err(res.Err).
			Msg("law violated")
	}
	return Report{Results: results}, nil
}
