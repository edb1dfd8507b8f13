package policy

import (
	"github.com/swarmshield/swarmshield/ent"
)

// RulesFromEnt converts persisted policy rules to the evaluator view.
func RulesFromEnt(rules []*ent.PolicyRule) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, Rule{
			ID:                  r.ID,
			Name:                r.Name,
			Type:                RuleType(r.RuleType),
			Action:              Action(r.Action),
			Priority:            r.Priority,
			Config:              r.Config,
			AppliesToEventTypes: r.AppliesToEventTypes,
			AppliesToAgentTypes: r.AppliesToAgentTypes,
		})
	}
	return out
}

// DetectionsFromEnt converts persisted detection rules to the evaluator view.
func DetectionsFromEnt(detections []*ent.DetectionRule) []Detection {
	out := make([]Detection, 0, len(detections))
	for _, d := range detections {
		out = append(out, Detection{
			ID:       d.ID,
			Name:     d.Name,
			Type:     string(d.DetectionType),
			Pattern:  d.Pattern,
			Keywords: d.Keywords,
		})
	}
	return out
}
