package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/fpeterek/strojove-uceni/internal/apriori"
	"github.com/fpeterek/strojove-uceni/internal/common"
	"github.com/fpeterek/strojove-uceni/internal/report"
)

// Configuration keys.
const (
	KeyMinSupport      = "mining.min_support"
	KeyMinConfidence   = "mining.min_confidence"
	KeyThresholdPolicy = "mining.threshold_policy"
	KeyIndex           = "mining.index"
	KeyWorkers         = "mining.workers"
	KeyOutputFormat    = "output.format"
	KeyProgress        = "output.progress"
)

// MiningConfig holds the find-patterns settings.
type MiningConfig struct {
	Policy        apriori.ThresholdPolicy
	Index         apriori.Index
	Format        report.Format
	MinSupport    float64
	MinConfidence float64
	Workers       int
	Progress      bool
}

// DefaultMiningConfig returns the built-in defaults.
func DefaultMiningConfig() MiningConfig {
	opts := apriori.DefaultOptions()
	return MiningConfig{
		Policy:        opts.Policy,
		Index:         opts.Index,
		Format:        report.FormatPlain,
		MinSupport:    opts.MinSupport,
		MinConfidence: opts.MinConfidence,
		Workers:       opts.Workers,
	}
}

// LoadMiningConfig loads mining configuration from Viper. Keys that are not
// set (in a config file, APRIORI_ env vars or bound flags) keep their
// defaults. A nil v means the global Viper instance.
func LoadMiningConfig(v *viper.Viper) (*MiningConfig, error) {
	if v == nil {
		v = viper.GetViper()
	}
	config := DefaultMiningConfig()

	if v.IsSet(KeyMinSupport) {
		config.MinSupport = v.GetFloat64(KeyMinSupport)
	}
	if v.IsSet(KeyMinConfidence) {
		config.MinConfidence = v.GetFloat64(KeyMinConfidence)
	}
	if v.IsSet(KeyThresholdPolicy) {
		config.Policy = apriori.ThresholdPolicy(v.GetString(KeyThresholdPolicy))
	}
	if v.IsSet(KeyIndex) {
		config.Index = apriori.Index(v.GetString(KeyIndex))
	}
	if v.IsSet(KeyWorkers) {
		config.Workers = v.GetInt(KeyWorkers)
	}
	if v.IsSet(KeyOutputFormat) {
		config.Format = report.Format(v.GetString(KeyOutputFormat))
	}
	if v.IsSet(KeyProgress) {
		config.Progress = v.GetBool(KeyProgress)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the mining parameters and the output format.
func (c MiningConfig) Validate() error {
	o := apriori.DefaultOptions()
	for _, opt := range c.Options() {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	if _, err := report.ParseFormat(string(c.Format)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	return nil
}

// Options converts the configuration to apriori options.
func (c MiningConfig) Options() []apriori.Option {
	return []apriori.Option{
		apriori.WithMinSupport(c.MinSupport),
		apriori.WithMinConfidence(c.MinConfidence),
		apriori.WithThresholdPolicy(c.Policy),
		apriori.WithIndex(c.Index),
		apriori.WithWorkers(c.Workers),
	}
}
