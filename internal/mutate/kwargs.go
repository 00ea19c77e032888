package mutate

import (
	"fmt"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
)

var errEmptyChoices = anonerr.New(anonerr.KindRuleParse, "choices", fmt.Errorf("random_choice requires a non-empty choices list"))

// kwargString/kwargFloat/kwargBool/kwargStrings extract a validated
// kwarg from the raw map decoded off an `anon:` rule body, reporting
// anonerr.KindRuleParse on type mismatch so the caller can surface a
// precise complaint at rule-load time instead of at first use.

func kwargString(kwargs map[string]any, key string, required bool, def string) (string, error) {
	v, ok := kwargs[key]
	if !ok {
		if required {
			return "", anonerr.New(anonerr.KindRuleParse, key, fmt.Errorf("missing required kwarg %q", key))
		}
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", anonerr.New(anonerr.KindRuleParse, key, fmt.Errorf("kwarg %q must be a string", key))
	}
	return s, nil
}

func kwargFloat(kwargs map[string]any, key string, required bool, def float64) (float64, error) {
	v, ok := kwargs[key]
	if !ok {
		if required {
			return 0, anonerr.New(anonerr.KindRuleParse, key, fmt.Errorf("missing required kwarg %q", key))
		}
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, anonerr.New(anonerr.KindRuleParse, key, fmt.Errorf("kwarg %q must be a number", key))
	}
	return f, nil
}

func kwargBool(kwargs map[string]any, key string, def bool) (bool, error) {
	v, ok := kwargs[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, anonerr.New(anonerr.KindRuleParse, key, fmt.Errorf("kwarg %q must be a bool", key))
	}
	return b, nil
}

func kwargStrings(kwargs map[string]any, key string, required bool) ([]string, error) {
	v, ok := kwargs[key]
	if !ok {
		if required {
			return nil, anonerr.New(anonerr.KindRuleParse, key, fmt.Errorf("missing required kwarg %q", key))
		}
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, anonerr.New(anonerr.KindRuleParse, key, fmt.Errorf("kwarg %q must be a list of strings", key))
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, anonerr.New(anonerr.KindRuleParse, key, fmt.Errorf("kwarg %q must be a list of strings", key))
		}
		out = append(out, s)
	}
	return out, nil
}
