// File: sock/device_stub.go
//go:build !linux

// Author: momentics <momentics@gmail.com>

package sock

import (
	"fmt"

	"github.com/momentics/netfd/api"
)

// BindToDevice fails loudly where SO_BINDTODEVICE does not exist; a
// silently succeeding stub would hide a broken device restriction.
func (s *Socket) BindToDevice(name string) error {
	return fmt.Errorf("%w: bind to device %q", api.ErrNotSupported, name)
}
