package policy

import (
	"errors"
	"fmt"
)

// Configuration errors surfaced from evaluators. These mark a rule as failed
// for the current event; they never block the event itself.
var (
	ErrMissingConfigKey = errors.New("missing config key")
	ErrBadConfigValue   = errors.New("bad config value")
)

func errUnknownRuleType(t RuleType) error {
	return fmt.Errorf("%w: unknown rule type %q", ErrBadConfigValue, t)
}

// configInt reads an integer config value. JSON round trips numbers as
// float64, so both forms are accepted.
func configInt(config map[string]any, key string) (int64, error) {
	raw, ok := config[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingConfigKey, key)
	}
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number", ErrBadConfigValue, key)
	}
}

// configOptionalInt is configInt for keys that may legitimately be absent.
func configOptionalInt(config map[string]any, key string) (int64, bool, error) {
	if _, ok := config[key]; !ok {
		return 0, false, nil
	}
	n, err := configInt(config, key)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// configString reads a string config value, returning fallback when absent.
func configString(config map[string]any, key, fallback string) (string, error) {
	raw, ok := config[key]
	if !ok {
		return fallback, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrBadConfigValue, key)
	}
	return s, nil
}

// configStrings reads a string list config value. JSON decodes lists as
// []any, so both forms are accepted.
func configStrings(config map[string]any, key string) ([]string, error) {
	raw, ok := config[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingConfigKey, key)
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must contain only strings", ErrBadConfigValue, key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a list of strings", ErrBadConfigValue, key)
	}
}
