package normalize

import "strconv"

// BoolQuery resolves an optional boolean query parameter. An empty value
// yields the default; anything strconv rejects is a validation error.
func BoolQuery(raw, name string, def bool) (bool, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, Errorf("%s must be a boolean", name)
	}
	return v, nil
}

// LimitQuery resolves a positive integer query parameter. Bounds are
// the caller's concern; zero and negatives are rejected here.
func LimitQuery(raw, name string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, Errorf("%s must be an integer", name)
	}
	if n < 1 {
		return 0, Errorf("%s must be positive", name)
	}
	return n, nil
}
