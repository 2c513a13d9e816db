// Package capture decides how each syscall argument is captured.
//
// A declared C type is resolved through a fixed classification table to a
// ring buffer store function and a storage type. Types missing from the table
// fall back to a 64-bit unsigned capture.
//
// Capture strategies:
//   - String: bounded copy of a user-space C string
//   - Deref: guarded read of a user-space scalar through a pointer
//   - Address: raw address of an unrecognized pointer
//   - Scalar: register value cast to the storage type
package capture
