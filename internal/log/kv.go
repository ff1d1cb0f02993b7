package log

import "sort"

// Namespaces used across the project to differentiate log sources.
const (
	NsEngine    = "engine"
	NsEphemeral = "ephemeral"
	NsShell     = "shell"
	NsBench     = "bench"
)

// KV represents a set of key-value pairs to be attached to a log line.
type KV map[string]any

// kvToArgs flattens the given KV sets into the alternating key-value
// slice that slog expects. Keys within a set are emitted in sorted
// order so log lines stay deterministic.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}
	for _, kv := range keyVals {
		keys := make([]string, 0, len(kv))
		for key := range kv {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			args = append(args, key, kv[key])
		}
	}
	return args
}

// kvToArgsNs is like kvToArgs but prepends the given namespace as the
// first key-value pair.
func kvToArgsNs(namespace string, keyVals ...KV) []any {
	return append([]any{"namespace", namespace}, kvToArgs(keyVals...)...)
}
