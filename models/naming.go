package models

// ParamName composes the externally visible parameter name from a model
// prefix, a base name, and an optional suffix:
//
//	prefix + base            when suffix is ""
//	prefix + base + suffix   otherwise
//
// The composition is deterministic and reproducible; uniqueness across
// models sharing a store is the callers' concern — give each model a
// distinct (prefix, suffix) pair, and the store's contents stay disjoint.
func ParamName(prefix, base, suffix string) string {
	if suffix == "" {
		return prefix + base
	}

	return prefix + base + suffix
}
