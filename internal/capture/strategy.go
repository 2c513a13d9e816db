package capture

import "strings"

//go:generate go tool stringer -type=Strategy -output=strategy_string.go

// Strategy is how one argument is fetched and stored.
type Strategy int

const (
	_ Strategy = iota // zero value is not a valid strategy

	// StrategyString copies a bounded user-space string into the ring buffer.
	StrategyString
	// StrategyDeref reads a scalar through a user-space pointer, storing zero for null.
	StrategyDeref
	// StrategyAddress stores the pointer value of an unrecognized pointer type.
	StrategyAddress
	// StrategyScalar stores the register value cast to the storage type.
	StrategyScalar
)

const pointerMarker = "*"

// Classify picks the strategy for declType. It never fails: unknown types
// resolve through Fallback.
func Classify(table *Table, declType string) (Strategy, Entry) {
	entry := table.Resolve(declType)

	switch {
	case entry.Func == StoreCharPointer:
		return StrategyString, entry
	case strings.Contains(entry.Storage, pointerMarker):
		return StrategyDeref, entry
	case strings.Contains(declType, pointerMarker):
		return StrategyAddress, entry
	default:
		return StrategyScalar, entry
	}
}

// Pointee strips the pointer suffix from a storage type ("int32_t *" -> "int32_t").
func Pointee(storage string) string {
	return strings.ReplaceAll(storage, " *", "")
}
