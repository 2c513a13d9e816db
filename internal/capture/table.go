package capture

import (
	"maps"
	"slices"
)

// Store functions and storage types of the external ring buffer API.
const (
	StoreS8          = "linx_ringbuf_store_s8"
	StoreS16         = "linx_ringbuf_store_s16"
	StoreS32         = "linx_ringbuf_store_s32"
	StoreS64         = "linx_ringbuf_store_s64"
	StoreU8          = "linx_ringbuf_store_u8"
	StoreU16         = "linx_ringbuf_store_u16"
	StoreU32         = "linx_ringbuf_store_u32"
	StoreU64         = "linx_ringbuf_store_u64"
	StoreCharPointer = "linx_ringbuf_store_charpointer"

	StorageU64 = "uint64_t"
)

// Entry is the capture function and storage type for one declared type.
type Entry struct {
	Func    string
	Storage string
}

// Fallback is used for every declared type the table does not know.
var Fallback = Entry{Func: StoreU64, Storage: StorageU64}

// Table maps declared C types to capture entries. It is never modified after
// construction.
type Table struct {
	entries map[string]Entry
}

// NewTable builds a table from entries. The map is copied.
func NewTable(entries map[string]Entry) *Table {
	t := &Table{entries: make(map[string]Entry, len(entries))}
	maps.Copy(t.entries, entries)

	return t
}

// DefaultTable returns the built-in classification table.
func DefaultTable() *Table {
	return defaultTable
}

var defaultTable = NewTable(map[string]Entry{
	// int8_t
	"char": {StoreS8, "int8_t"},

	// int16_t
	"short": {StoreS16, "int16_t"},

	// int32_t
	"int":             {StoreS32, "int32_t"},
	"int *":           {StoreS32, "int32_t *"},
	"__s32":           {StoreS32, "int32_t"},
	"key_t":           {StoreS32, "int32_t"},
	"pid_t":           {StoreS32, "int32_t"},
	"timer_t":         {StoreS32, "int32_t"},
	"clockid_t":       {StoreS32, "int32_t"},
	"const clockid_t": {StoreS32, "int32_t"},
	"mqd_t":           {StoreS32, "int32_t"},
	"key_serial_t":    {StoreS32, "int32_t"},
	"rwf_t":           {StoreS32, "int32_t"},

	// int64_t
	"long":     {StoreS64, "int64_t"},
	"off_t":    {StoreS64, "int64_t"},
	"loff_t":   {StoreS64, "int64_t"},
	"loff_t *": {StoreS64, "int64_t *"},

	// uint8_t
	"unsigned char": {StoreU8, "uint8_t"},

	// uint16_t
	"unsigned short": {StoreU16, "uint16_t"},
	"umode_t":        {StoreU16, "uint16_t"},

	// uint32_t
	"unsigned":       {StoreU32, "uint32_t"},
	"unsigned int":   {StoreU32, "uint32_t"},
	"unsigned *":     {StoreU32, "uint32_t *"},
	"unsigned int *": {StoreU32, "uint32_t *"},
	"u32":            {StoreU32, "uint32_t"},
	"u32 *":          {StoreU32, "uint32_t *"},
	"uid_t":          {StoreU32, "uint32_t"},
	"uid_t *":        {StoreU32, "uint32_t *"},
	"gid_t":          {StoreU32, "uint32_t"},
	"gid_t *":        {StoreU32, "uint32_t *"},
	"qid_t":          {StoreU32, "uint32_t"},

	// uint64_t
	"unsigned long":         {StoreU64, "uint64_t"},
	"unsigned long *":       {StoreU64, "uint64_t *"},
	"const unsigned long *": {StoreU64, "uint64_t *"},
	"size_t":                {StoreU64, "uint64_t"},
	"size_t *":              {StoreU64, "uint64_t *"},
	"aio_context_t":         {StoreU64, "uint64_t"},

	// user-space strings
	"char *":                {StoreCharPointer, "uint64_t"},
	"unsigned char *":       {StoreCharPointer, "uint64_t"},
	"const char *":          {StoreCharPointer, "uint64_t"},
	"const unsigned char *": {StoreCharPointer, "uint64_t"},
	"const char *const *":   {StoreCharPointer, "uint64_t"},
})

// Lookup returns the entry for an exact declared type.
func (t *Table) Lookup(declType string) (Entry, bool) {
	e, ok := t.entries[declType]
	return e, ok
}

// Resolve returns the entry for declType, or Fallback if there is none.
func (t *Table) Resolve(declType string) Entry {
	if e, ok := t.Lookup(declType); ok {
		return e
	}

	return Fallback
}

// With returns a new table with overrides added on top of t.
func (t *Table) With(overrides map[string]Entry) *Table {
	entries := maps.Clone(t.entries)
	maps.Copy(entries, overrides)

	return &Table{entries: entries}
}

// Types returns the declared types of the table in sorted order.
func (t *Table) Types() []string {
	return slices.Sorted(maps.Keys(t.entries))
}

// Len returns the number of declared types in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
