//go:build linux

package sock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/momentics/netfd/api"
	"github.com/momentics/netfd/sock"
)

func TestBindToDeviceMissingInterface(t *testing.T) {
	s, err := sock.NewUDP()
	require.NoError(t, err)
	defer s.Close()

	// EPERM without CAP_NET_RAW, ENODEV with it; a SyscallError either way,
	// never a silent success.
	err = s.BindToDevice("no-such-if0")
	se := api.AsSyscallError(err)
	require.NotNil(t, se, "expected SyscallError, got %v", err)
	assert.Equal(t, "setsockopt", se.Op)
}

func TestPacketSocketPromiscuousUnbound(t *testing.T) {
	p, err := sock.NewPacket(unix.SOCK_DGRAM, 0)
	if err != nil {
		// Test runs normally lack CAP_NET_RAW; creation itself must fail
		// through the taxonomy.
		require.NotNil(t, api.AsSyscallError(err), "expected SyscallError, got %v", err)
		t.Skipf("packet socket unavailable: %v", err)
	}
	defer p.Close()

	// Promiscuous membership needs a bound interface to attach to.
	err = p.SetPromiscuous()
	assert.Error(t, err)
}
