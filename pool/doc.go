// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-size byte buffer pooling for the descriptor read path. Read calls
// are capped at one chunk, so a single pool of chunk-sized buffers covers
// every transient allocation in the library.
package pool
