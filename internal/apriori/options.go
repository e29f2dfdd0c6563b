package apriori

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/fpeterek/strojove-uceni/internal/common"
)

// Default thresholds.
const (
	DefaultMinSupport    = 0.25
	DefaultMinConfidence = 0.5
)

// ThresholdPolicy selects how support is compared against the minimum at the
// seed level and at the joined levels.
type ThresholdPolicy string

const (
	// PolicyParity keeps singletons with support >= min and larger itemsets
	// with support > min.
	PolicyParity ThresholdPolicy = "parity"
	// PolicyInclusive uses support >= min at every level.
	PolicyInclusive ThresholdPolicy = "inclusive"
	// PolicyStrict uses support > min at every level.
	PolicyStrict ThresholdPolicy = "strict"
)

// seedPasses applies the level-1 comparison.
func (p ThresholdPolicy) seedPasses(support, minSupport float64) bool {
	if p == PolicyStrict {
		return support > minSupport
	}
	return support >= minSupport
}

// joinPasses applies the comparison for itemsets of size >= 2.
func (p ThresholdPolicy) joinPasses(support, minSupport float64) bool {
	if p == PolicyInclusive {
		return support >= minSupport
	}
	return support > minSupport
}

// Index selects the support counter implementation.
type Index string

const (
	// IndexBitmap counts supports by intersecting per-item roaring bitmaps.
	IndexBitmap Index = "bitmap"
	// IndexScan counts supports by scanning every transaction.
	IndexScan Index = "scan"
)

// LevelStats describes one finished level of the search.
type LevelStats struct {
	// Size is the itemset size of the level.
	Size int
	// Candidates is the number of distinct candidates scored.
	Candidates int
	// Frequent is the number of candidates that survived.
	Frequent int
}

// Option configures Mine, GenerateRules and FindPatterns.
type Option func(*Options)

// Options holds mining parameters. Use DefaultOptions and Option helpers
// rather than building it by hand.
type Options struct {
	// Logger receives Debug records per level and per itemset; nil means slog.Default().
	Logger *slog.Logger `validate:"-"`

	// OnLevel, if non-nil, is called after each level of the search.
	OnLevel func(LevelStats) `validate:"-"`

	// OnItemset, if non-nil, is called after each itemset has been expanded
	// into rules, with the number of itemsets done and the total.
	OnItemset func(done, total int) `validate:"-"`

	Policy        ThresholdPolicy `validate:"oneof=parity inclusive strict"`
	Index         Index           `validate:"oneof=bitmap scan"`
	MinSupport    float64         `validate:"gt=0,lte=1"`
	MinConfidence float64         `validate:"gt=0,lte=1"`
	Workers       int             `validate:"gte=1"`
}

// DefaultOptions returns the defaults: min support 0.25, min confidence 0.5,
// parity policy, bitmap index and a single worker.
func DefaultOptions() Options {
	return Options{
		Policy:        PolicyParity,
		Index:         IndexBitmap,
		MinSupport:    DefaultMinSupport,
		MinConfidence: DefaultMinConfidence,
		Workers:       1,
	}
}

// WithMinSupport sets the minimum support threshold, in (0, 1].
func WithMinSupport(v float64) Option {
	return func(o *Options) { o.MinSupport = v }
}

// WithMinConfidence sets the minimum rule confidence, in (0, 1].
func WithMinConfidence(v float64) Option {
	return func(o *Options) { o.MinConfidence = v }
}

// WithThresholdPolicy selects the support comparison policy.
func WithThresholdPolicy(p ThresholdPolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithIndex selects the support counter.
func WithIndex(idx Index) Option {
	return func(o *Options) { o.Index = idx }
}

// WithWorkers bounds the number of concurrent support queries.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithLevelHook registers a callback run after every level.
func WithLevelHook(fn func(LevelStats)) Option {
	return func(o *Options) { o.OnLevel = fn }
}

// WithRuleHook registers a callback run after every itemset expanded into rules.
func WithRuleHook(fn func(done, total int)) Option {
	return func(o *Options) { o.OnItemset = fn }
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every parameter and reports the first violation as
// common.ErrInvalidParameter.
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return common.InvalidParameter(fe.Field(), "violates %s=%s (got %v)", fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("%w: %v", common.ErrInvalidParameter, err)
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o, nil
}
