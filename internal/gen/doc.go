// Package gen renders eBPF tail-call sources for syscall declarations.
//
// Generation approach uses text/template over a fixed probe skeleton; only
// the names and the exit probe's argument capture blocks vary.
//
// Every declaration produces one file, named "<number>-<lower>.bpf.c" with the
// number zero-padded to three digits, holding:
//   - An entry probe on tp_btf/sys_enter recording the _E event
//   - An exit probe on tp_btf/sys_exit recording the _X event, the return
//     value and every entry argument
package gen
