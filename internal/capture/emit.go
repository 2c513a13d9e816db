package capture

import (
	"fmt"

	"probe-generator/internal/decl"
)

// Emitter renders per-argument capture statements against a table.
type Emitter struct {
	table *Table
}

// NewEmitter returns an Emitter that classifies through table.
// A nil table means DefaultTable.
func NewEmitter(table *Table) *Emitter {
	if table == nil {
		table = DefaultTable()
	}

	return &Emitter{table: table}
}

// Table returns the classification table of the emitter.
func (e *Emitter) Table() *Table {
	return e.table
}

// Block returns the statement lines capturing p, read from argument register
// index. The block opens with a comment naming the parameter and ends with an
// empty line.
func (e *Emitter) Block(index int, p decl.Param) []string {
	strategy, entry := Classify(e.table, p.Type)

	lines := []string{fmt.Sprintf("    /* %s %s */", p.Type, p.Name)}
	lines = append(lines, statements(strategy, entry, index, p.Name)...)

	return append(lines, "")
}

// Blocks returns the concatenated blocks of params in order.
func (e *Emitter) Blocks(params []decl.Param) []string {
	var lines []string
	for i, p := range params {
		lines = append(lines, e.Block(i, p)...)
	}

	return lines
}

func statements(strategy Strategy, entry Entry, index int, name string) []string {
	switch strategy {
	case StrategyString:
		return []string{
			fmt.Sprintf("    %s __%s = (%s)get_pt_regs_argumnet(regs, %d);", entry.Storage, name, entry.Storage, index),
			fmt.Sprintf("    %s(ringbuf, __%s, LINX_CHARBUF_MAX_SIZE, USER);", StoreCharPointer, name),
		}

	case StrategyDeref:
		// The storage type already ends in " *", so no separator before the name.
		return []string{
			fmt.Sprintf("    %s__%s = (%s)get_pt_regs_argumnet(regs, %d);", entry.Storage, name, entry.Storage, index),
			fmt.Sprintf("    %s ___%s = 0;", Pointee(entry.Storage), name),
			fmt.Sprintf("    if (__%s) { ", name),
			fmt.Sprintf("        bpf_probe_read_user(&___%s, sizeof(___%s), __%s);", name, name, name),
			"    }",
			fmt.Sprintf("    %s(ringbuf, ___%s);", entry.Func, name),
		}

	case StrategyAddress:
		return []string{
			fmt.Sprintf("    %s __%s = (%s)get_pt_regs_argumnet(regs, %d);", StorageU64, name, StorageU64, index),
			fmt.Sprintf("    %s(ringbuf, __%s);", StoreU64, name),
		}

	default:
		return []string{
			fmt.Sprintf("    %s __%s = (%s)get_pt_regs_argumnet(regs, %d);", entry.Storage, name, entry.Storage, index),
			fmt.Sprintf("    %s(ringbuf, __%s);", entry.Func, name),
		}
	}
}
