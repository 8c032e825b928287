package gokanjihanzi

import (
	"io"

	"go.uber.org/zap"
)

// Report summarises how a Table was built.
type Report struct {
	Parsed        int
	Malformed     int
	NotAccepted   int
	Restricted    int
	Size          int
	AcceptedKanji int
	RowErrors     []*RowError
}

type buildConfig struct {
	format     Format
	policy     DuplicatePolicy
	predicates []EntryPredicate
	logger     *zap.Logger
}

// Option customises Build.
type Option func(*buildConfig)

// WithFormat sets the mapping table notation. DefaultFormat is used otherwise.
func WithFormat(f Format) Option {
	return func(cfg *buildConfig) {
		cfg.format = f
	}
}

// WithPolicy sets the duplicate row policy.
func WithPolicy(p DuplicatePolicy) Option {
	return func(cfg *buildConfig) {
		cfg.policy = p
	}
}

// WithPredicate adds a filter stage run after the Kanji list filter. Stages
// run in the order they are given.
func WithPredicate(p EntryPredicate) Option {
	return func(cfg *buildConfig) {
		if p != nil {
			cfg.predicates = append(cfg.predicates, p)
		}
	}
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *buildConfig) {
		cfg.logger = logger
	}
}

func newBuildConfig(opts []Option) buildConfig {
	cfg := buildConfig{
		format: DefaultFormat,
		policy: DefaultDuplicatePolicy,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}

// Build parses tableText and kanjiList and returns the filtered Table. It never
// fails; malformed rows are reported and skipped.
func Build(tableText, kanjiList string, opts ...Option) (*Table, Report) {
	cfg := newBuildConfig(opts)
	entries, rowErrs := ParseTable(tableText, cfg.format)
	return build(entries, rowErrs, ParseKanjiList(kanjiList), cfg)
}

// Load is Build over readers. Only read failures are returned as errors.
func Load(table, kanjiList io.Reader, opts ...Option) (*Table, Report, error) {
	cfg := newBuildConfig(opts)
	accepted, err := ReadKanjiList(kanjiList)
	if err != nil {
		return nil, Report{}, err
	}
	entries, rowErrs, err := ReadTable(table, cfg.format)
	if err != nil {
		return nil, Report{}, err
	}
	t, report := build(entries, rowErrs, accepted, cfg)
	return t, report, nil
}

func build(entries []Entry, rowErrs []*RowError, accepted KanjiSet, cfg buildConfig) (*Table, Report) {
	logger := cfg.logger
	if accepted.Len() != StandardKanjiCount {
		logger.Warn("unexpected kanji list size",
			zap.Int("size", accepted.Len()),
			zap.Int("expected", StandardKanjiCount),
		)
	}
	for _, rowErr := range rowErrs {
		logger.Debug("skipping malformed row",
			zap.Int("line", rowErr.Line),
			zap.String("reason", rowErr.Reason),
		)
	}

	table := Filter(entries, accepted, WithDuplicatePolicy(cfg.policy))
	report := Report{
		Parsed:        len(entries),
		Malformed:     len(rowErrs),
		AcceptedKanji: accepted.Len(),
		RowErrors:     rowErrs,
	}
	for _, e := range entries {
		if !accepted.Contains(e.Japanese) {
			report.NotAccepted++
		}
	}

	if len(cfg.predicates) > 0 {
		before := table.Len()
		table = table.Restrict(All(cfg.predicates...))
		report.Restricted = before - table.Len()
	}
	report.Size = table.Len()

	logger.Info("kanji table built",
		zap.Int("parsed", report.Parsed),
		zap.Int("malformed", report.Malformed),
		zap.Int("not_accepted", report.NotAccepted),
		zap.Int("restricted", report.Restricted),
		zap.Int("size", report.Size),
		zap.Stringer("duplicate_policy", cfg.policy),
	)
	return table, report
}
