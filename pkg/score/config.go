// Package score provides the heuristic content-quality scorers: a
// synthetic-text-likelihood score, a search-optimization score, and the
// derived reading-time metric.
//
// All thresholds and weights are hand-tuned constants carried over from
// production use; they approximate, they do not prove. They can be overridden
// from a YAML file but have no statistical derivation worth inferring.
package score

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScoreConfigEnv names the environment variable holding an optional YAML
// threshold-override file path.
const ScoreConfigEnv = "BLOGSMITH_SCORE_CONFIG"

// Default synthetic-likelihood thresholds and weights.
const (
	DefaultPassBelow            = 50  // final score below this passes
	DefaultMinContentChars      = 100 // shorter text carries too little signal
	DefaultMinSentences         = 5
	DefaultStockPhraseWeight    = 8
	DefaultStockPhraseFlagAt    = 40
	DefaultDiversityFlagBelow   = 0.6
	DefaultPassiveWeight        = 50
	DefaultPassiveFlagAbove     = 0.5
	DefaultUniformityScale      = 60
	DefaultUniformityFlagBelow  = 0.3
	DefaultTransitionWeight     = 40
	DefaultTransitionFlagAbove  = 0.7
	DefaultGenericClaimWeight   = 15
	DefaultGenericClaimFlagOver = 3
)

// Config holds the tunable thresholds for the synthetic-likelihood heuristic.
type Config struct {
	PassBelow            int     `yaml:"pass_below"`
	MinContentChars      int     `yaml:"min_content_chars"`
	MinSentences         int     `yaml:"min_sentences"`
	StockPhraseWeight    int     `yaml:"stock_phrase_weight"`
	StockPhraseFlagAt    int     `yaml:"stock_phrase_flag_at"`
	DiversityFlagBelow   float64 `yaml:"diversity_flag_below"`
	PassiveWeight        int     `yaml:"passive_weight"`
	PassiveFlagAbove     float64 `yaml:"passive_flag_above"`
	UniformityScale      int     `yaml:"uniformity_scale"`
	UniformityFlagBelow  float64 `yaml:"uniformity_flag_below"`
	TransitionWeight     int     `yaml:"transition_weight"`
	TransitionFlagAbove  float64 `yaml:"transition_flag_above"`
	GenericClaimWeight   int     `yaml:"generic_claim_weight"`
	GenericClaimFlagOver int     `yaml:"generic_claim_flag_over"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		PassBelow:            DefaultPassBelow,
		MinContentChars:      DefaultMinContentChars,
		MinSentences:         DefaultMinSentences,
		StockPhraseWeight:    DefaultStockPhraseWeight,
		StockPhraseFlagAt:    DefaultStockPhraseFlagAt,
		DiversityFlagBelow:   DefaultDiversityFlagBelow,
		PassiveWeight:        DefaultPassiveWeight,
		PassiveFlagAbove:     DefaultPassiveFlagAbove,
		UniformityScale:      DefaultUniformityScale,
		UniformityFlagBelow:  DefaultUniformityFlagBelow,
		TransitionWeight:     DefaultTransitionWeight,
		TransitionFlagAbove:  DefaultTransitionFlagAbove,
		GenericClaimWeight:   DefaultGenericClaimWeight,
		GenericClaimFlagOver: DefaultGenericClaimFlagOver,
	}
}

// LoadConfig reads threshold overrides from a YAML file. Fields absent from
// the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read score config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse score config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv returns the default config, overridden from the file named by
// BLOGSMITH_SCORE_CONFIG when set. A broken override file degrades to
// defaults with a non-nil error for the caller to log.
func ConfigFromEnv() (Config, error) {
	path := os.Getenv(ScoreConfigEnv)
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
