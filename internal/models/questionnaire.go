package models

import (
	"encoding/json"
	"fmt"
)

// Questionnaire holds the answers the recommendation filter reads. Clients
// send either the questionnaire keys (q15, q6, q31, q32) or named keys.
// Any other answer lands in Extra.
type Questionnaire struct {
	// Goal is the user's main fitness goal (q15).
	Goal string
	// HasInjuries is "Yes" when the user reported injuries (q6).
	HasInjuries string
	// Location is the preferred place to train (q31). Not used for filtering.
	Location string
	// Equipment is the equipment the user owns (q32).
	Equipment []string
	// Extra keeps the remaining answers untouched.
	Extra map[string]any
}

var questionnaireKeys = map[string][2]string{
	"goal":        {"q15", "goal"},
	"hasInjuries": {"q6", "hasInjuries"},
	"location":    {"q31", "location"},
	"equipment":   {"q32", "equipment"},
}

// HasInjury reports whether the user answered "Yes" to the injury question.
func (q Questionnaire) HasInjury() bool {
	return q.HasInjuries == "Yes"
}

// UnmarshalJSON implements json.Unmarshaler.
func (q *Questionnaire) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out Questionnaire
	extra := make(map[string]json.RawMessage)
	take := func(field string) (string, json.RawMessage, bool) {
		keys := questionnaireKeys[field]
		var (
			key   string
			found json.RawMessage
		)
		ok := false
		// numbered key wins over the named alias
		for i := len(keys) - 1; i >= 0; i-- {
			if v, exists := raw[keys[i]]; exists {
				key, found, ok = keys[i], v, true
			}
			delete(raw, keys[i])
		}
		return key, found, ok
	}

	// Answers of an unexpected type count as unanswered and are kept in Extra.
	for field, dst := range map[string]*string{
		"goal":        &out.Goal,
		"hasInjuries": &out.HasInjuries,
		"location":    &out.Location,
	} {
		if key, v, ok := take(field); ok && !decodeOptionalString(v, dst) {
			extra[key] = v
		}
	}
	if _, v, ok := take("equipment"); ok {
		eq, err := decodeEquipment(v)
		if err != nil {
			return fmt.Errorf("equipment: %w", err)
		}
		out.Equipment = eq
	}

	for k, v := range raw {
		extra[k] = v
	}
	if len(extra) > 0 {
		out.Extra = make(map[string]any, len(extra))
		for k, v := range extra {
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			out.Extra[k] = val
		}
	}

	*q = out
	return nil
}

// decodeOptionalString stores a JSON string in dst. It reports false for any
// other type; null counts as a string that was not given.
func decodeOptionalString(data json.RawMessage, dst *string) bool {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return false
	}
	if s != nil {
		*dst = *s
	}
	return true
}

// decodeEquipment accepts a list of tags, a single tag or null.
func decodeEquipment(data json.RawMessage) ([]string, error) {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	if single == "" {
		return nil, nil
	}
	return []string{single}, nil
}
