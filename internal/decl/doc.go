// Package decl extracts syscall declarations from a macro header.
//
// A declaration is one line of the form
//
//	SYSCALL_MACRO(OPENAT, openat, 257, 2, 1) ENTER_PARAM_MACRO(int, dirfd, const char *, filename) EXIT_PARAM_MACRO(int, fd)
//
// Lines that do not have this shape are skipped. The entry parameter list is
// a flat, comma-separated sequence of alternating type and name tokens.
package decl
