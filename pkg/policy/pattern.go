package policy

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"
)

// patternGuard bounds one regex match. Patterns are validated at write time,
// but a guard here keeps a pathological pattern from stalling ingestion.
const patternGuard = 100 * time.Millisecond

// patternCache memoizes compiled detection patterns by source text. Detection
// edits produce new pattern strings, so stale compilations are just unused
// entries, not wrong ones.
type patternCache struct {
	mu       sync.RWMutex
	compiled map[string]*regexp.Regexp
}

func newPatternCache() *patternCache {
	return &patternCache{compiled: make(map[string]*regexp.Regexp)}
}

func (p *patternCache) get(pattern string) (*regexp.Regexp, error) {
	p.mu.RLock()
	re, ok := p.compiled[pattern]
	p.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.compiled[pattern] = re
	p.mu.Unlock()
	return re, nil
}

// evalPatternMatch runs the workspace's detection rules over the event
// content. The optional detection_rule_ids config narrows which detections
// the rule consults; absent, all of them apply. Matches report detection IDs
// only, never patterns or matched text.
func (e *Engine) evalPatternMatch(ctx context.Context, rule *Rule, ev *Event, detections []Detection) (bool, map[string]any, error) {
	var wanted map[string]bool
	if _, ok := rule.Config["detection_rule_ids"]; ok {
		ids, err := configStrings(rule.Config, "detection_rule_ids")
		if err != nil {
			return false, nil, err
		}
		wanted = make(map[string]bool, len(ids))
		for _, id := range ids {
			wanted[id] = true
		}
	}

	var matchedIDs []string
	for i := range detections {
		det := &detections[i]
		if wanted != nil && !wanted[det.ID.String()] {
			continue
		}

		hit, err := e.matchDetection(ctx, det, ev.Content)
		if err != nil {
			slog.Warn("Detection match failed, skipping detection",
				"rule_id", rule.ID,
				"detection_id", det.ID,
				"error", err)
			continue
		}
		if hit {
			matchedIDs = append(matchedIDs, det.ID.String())
		}
	}

	if len(matchedIDs) == 0 {
		return false, nil, nil
	}
	return true, map[string]any{"matched_detection_ids": matchedIDs}, nil
}

func (e *Engine) matchDetection(ctx context.Context, det *Detection, content string) (bool, error) {
	switch det.Type {
	case "keyword":
		lower := strings.ToLower(content)
		for _, kw := range det.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(kw)) {
				return true, nil
			}
		}
		return false, nil
	case "regex":
		re, err := e.patterns.get(det.Pattern)
		if err != nil {
			return false, err
		}
		return matchWithGuard(ctx, re, content, det.ID.String()), nil
	default:
		slog.Warn("Unknown detection type, treating as no match",
			"detection_id", det.ID,
			"detection_type", det.Type)
		return false, nil
	}
}

// matchWithGuard runs the match on a separate goroutine and gives up after
// patternGuard, treating the timeout as no match. The abandoned goroutine
// finishes on its own; Go regexps cannot be interrupted mid-match.
func matchWithGuard(ctx context.Context, re *regexp.Regexp, content, detectionID string) bool {
	done := make(chan bool, 1)
	go func() {
		done <- re.MatchString(content)
	}()

	select {
	case hit := <-done:
		return hit
	case <-ctx.Done():
		return false
	case <-time.After(patternGuard):
		slog.Warn("Pattern match exceeded guard, treating as no match",
			"detection_id", detectionID,
			"guard_ms", patternGuard.Milliseconds())
		return false
	}
}
