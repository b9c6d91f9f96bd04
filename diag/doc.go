// Package diag
// Author: momentics <momentics@gmail.com>
//
// Process-wide swappable debug sink. The descriptor layer routes
// destruction-path failures here because no caller is in a position to
// observe them; everything else in the library returns typed errors and
// never logs. This is a debug facility, not a logging framework: the
// handler registration is last-writer-wins.
package diag
