package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		declType string
		want     Strategy
		entry    Entry
	}{
		{"const char *", StrategyString, Entry{StoreCharPointer, "uint64_t"}},
		{"char *", StrategyString, Entry{StoreCharPointer, "uint64_t"}},
		{"int *", StrategyDeref, Entry{StoreS32, "int32_t *"}},
		{"unsigned long *", StrategyDeref, Entry{StoreU64, "uint64_t *"}},
		{"struct foo *", StrategyAddress, Fallback},
		{"int **", StrategyAddress, Fallback},
		{"int", StrategyScalar, Entry{StoreS32, "int32_t"}},
		{"unsigned long", StrategyScalar, Entry{StoreU64, "uint64_t"}},
		{"struct foo", StrategyScalar, Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.declType, func(t *testing.T) {
			t.Parallel()

			got, entry := Classify(DefaultTable(), tt.declType)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.entry, entry)
		})
	}
}

func TestPointee(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int32_t", Pointee("int32_t *"))
	assert.Equal(t, "uint64_t", Pointee("uint64_t"))
}

func TestStrategy_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "StrategyString", StrategyString.String())
	assert.Equal(t, "StrategyScalar", StrategyScalar.String())
	assert.Equal(t, "Strategy(0)", Strategy(0).String())
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}
