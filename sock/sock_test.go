package sock_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/momentics/netfd/api"
	"github.com/momentics/netfd/sock"
)

func loopback(t *testing.T, port uint16) api.Addr {
	t.Helper()
	addr, err := sock.ResolveAddr("127.0.0.1", port)
	require.NoError(t, err)
	return addr
}

func TestUDPRoundTrip(t *testing.T) {
	receiver, err := sock.NewUDP()
	require.NoError(t, err)
	defer receiver.Close()
	require.NoError(t, receiver.Bind(loopback(t, 0)))

	bound, err := receiver.LocalAddr()
	require.NoError(t, err)
	require.NotZero(t, bound.Port(), "kernel should assign a port")

	sender, err := sock.NewUDP()
	require.NoError(t, err)
	defer sender.Close()

	payload := []byte("datagram payload")
	require.NoError(t, sender.SendTo(payload, bound))

	buf := make([]byte, 64)
	n, from, err := receiver.Recv(buf)
	require.NoError(t, err)
	assert.Equal(t, payload, buf[:n])
	assert.Equal(t, "inet4", from.Network())
	assert.NotZero(t, from.Port())
}

func TestUDPConnectedSend(t *testing.T) {
	receiver, err := sock.NewUDP()
	require.NoError(t, err)
	defer receiver.Close()
	require.NoError(t, receiver.Bind(loopback(t, 0)))
	bound, err := receiver.LocalAddr()
	require.NoError(t, err)

	sender, err := sock.NewUDP()
	require.NoError(t, err)
	defer sender.Close()
	require.NoError(t, sender.Connect(bound))
	require.NoError(t, sender.Send([]byte("via peer")))

	buf := make([]byte, 64)
	n, _, err := receiver.Recv(buf)
	require.NoError(t, err)
	assert.Equal(t, "via peer", string(buf[:n]))
}

func TestUDPSendWithoutConnect(t *testing.T) {
	s, err := sock.NewUDP()
	require.NoError(t, err)
	defer s.Close()

	err = s.Send([]byte("nowhere"))
	se := api.AsSyscallError(err)
	require.NotNil(t, se, "kernel must reject unconnected send, got %v", err)
}

func TestDatagramTruncationReported(t *testing.T) {
	receiver, err := sock.NewUDP()
	require.NoError(t, err)
	defer receiver.Close()
	require.NoError(t, receiver.Bind(loopback(t, 0)))
	bound, err := receiver.LocalAddr()
	require.NoError(t, err)

	sender, err := sock.NewUDP()
	require.NoError(t, err)
	defer sender.Close()
	require.NoError(t, sender.SendTo(bytes.Repeat([]byte("x"), 64), bound))

	buf := make([]byte, 16)
	n, from, err := receiver.Recv(buf)
	require.ErrorIs(t, err, api.ErrTruncated)
	assert.Equal(t, 16, n, "received prefix must still be returned")
	assert.NotNil(t, from)
}

func TestTCPListenAccept(t *testing.T) {
	listener, err := sock.NewTCP()
	require.NoError(t, err)
	defer listener.Close()
	require.NoError(t, listener.SetReuseaddr())
	require.NoError(t, listener.Bind(loopback(t, 0)))
	require.NoError(t, listener.Listen(sock.DefaultBacklog))

	bound, err := listener.LocalAddr()
	require.NoError(t, err)

	client, err := sock.NewTCP()
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.Connect(bound))

	conn, err := listener.Accept()
	require.NoError(t, err)
	defer conn.Close()

	peer, err := conn.PeerAddr()
	require.NoError(t, err)
	clientLocal, err := client.LocalAddr()
	require.NoError(t, err)
	assert.Equal(t, clientLocal.String(), peer.String())

	require.NoError(t, client.WriteAll([]byte("hello")))
	buf := make([]byte, 16)
	n, err := conn.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))
}

func TestAcceptedConnHasFreshHandle(t *testing.T) {
	listener, err := sock.NewTCP()
	require.NoError(t, err)
	defer listener.Close()
	require.NoError(t, listener.Bind(loopback(t, 0)))
	require.NoError(t, listener.Listen(1))
	bound, err := listener.LocalAddr()
	require.NoError(t, err)

	client, err := sock.NewTCP()
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.Connect(bound))

	conn, err := listener.Accept()
	require.NoError(t, err)

	require.NoError(t, conn.Close())
	assert.False(t, listener.Closed(), "closing an accepted socket must not close the listener")
	assert.NotEqual(t, listener.RawFD(), conn.RawFD())
}

func TestNonblockingConnectRefused(t *testing.T) {
	// Grab an ephemeral port and free it again so nothing listens there.
	probe, err := sock.NewTCP()
	require.NoError(t, err)
	require.NoError(t, probe.Bind(loopback(t, 0)))
	dead, err := probe.LocalAddr()
	require.NoError(t, err)
	require.NoError(t, probe.Close())

	client, err := sock.NewTCP()
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.SetBlocking(false))

	err = client.Connect(dead)
	if err == nil {
		// In progress: the outcome shows up in the pending socket error.
		deadline := time.Now().Add(2 * time.Second)
		for {
			err = client.CheckError()
			if err != nil || time.Now().After(deadline) {
				break
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
	se := api.AsSyscallError(err)
	require.NotNil(t, se, "expected connection refused, got %v", err)
	assert.True(t, errors.Is(se.Errno, unix.ECONNREFUSED), "errno %v", se.Errno)
}

func TestGatherWriteOverTCP(t *testing.T) {
	listener, err := sock.NewTCP()
	require.NoError(t, err)
	defer listener.Close()
	require.NoError(t, listener.Bind(loopback(t, 0)))
	require.NoError(t, listener.Listen(1))
	bound, err := listener.LocalAddr()
	require.NoError(t, err)

	client, err := sock.NewTCP()
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.Connect(bound))
	conn, err := listener.Accept()
	require.NoError(t, err)
	defer conn.Close()

	spans := [][]byte{[]byte("alpha-"), []byte("beta-"), []byte("gamma")}
	n, err := client.WriteBuffers(spans)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	require.EqualValues(t, 1, client.WriteCount(), "vectored write must be one call")

	got := make([]byte, 0, n)
	buf := make([]byte, 32)
	for len(got) < n {
		rn, rerr := conn.Read(buf)
		require.NoError(t, rerr)
		got = append(got, buf[:rn]...)
	}
	assert.Equal(t, "alpha-beta-gamma", string(got))
}

func TestPeerAddrNotConnected(t *testing.T) {
	s, err := sock.NewTCP()
	require.NoError(t, err)
	defer s.Close()

	_, err = s.PeerAddr()
	assert.ErrorIs(t, err, api.ErrNotConnected)
}

func TestLocalDatagramRoundTrip(t *testing.T) {
	dir := t.TempDir()
	recvPath := filepath.Join(dir, "recv.sock")
	sendPath := filepath.Join(dir, "send.sock")

	receiver, err := sock.NewLocalDatagram()
	require.NoError(t, err)
	defer receiver.Close()
	require.NoError(t, receiver.Bind(sock.PathAddr(recvPath)))

	sender, err := sock.NewLocalDatagram()
	require.NoError(t, err)
	defer sender.Close()
	require.NoError(t, sender.Bind(sock.PathAddr(sendPath)))
	require.NoError(t, sender.SendTo([]byte("local bytes"), sock.PathAddr(recvPath)))

	buf := make([]byte, 64)
	n, from, err := receiver.Recv(buf)
	require.NoError(t, err)
	assert.Equal(t, "local bytes", string(buf[:n]))
	assert.Equal(t, sendPath, from.Path())
}

func TestLocalStreamListenAccept(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stream.sock")

	listener, err := sock.NewLocalStream()
	require.NoError(t, err)
	defer listener.Close()
	require.NoError(t, listener.Bind(sock.PathAddr(path)))
	require.NoError(t, listener.Listen(sock.DefaultBacklog))

	client, err := sock.NewLocalStream()
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.Connect(sock.PathAddr(path)))

	conn, err := listener.Accept()
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, client.WriteAll([]byte("over unix")))
	buf := make([]byte, 16)
	n, err := conn.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "over unix", string(buf[:n]))
}

func TestShutdownWrite(t *testing.T) {
	listener, err := sock.NewTCP()
	require.NoError(t, err)
	defer listener.Close()
	require.NoError(t, listener.Bind(loopback(t, 0)))
	require.NoError(t, listener.Listen(1))
	bound, err := listener.LocalAddr()
	require.NoError(t, err)

	client, err := sock.NewTCP()
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.Connect(bound))
	conn, err := listener.Accept()
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, client.Shutdown(unix.SHUT_WR))
	assert.False(t, client.Closed(), "shutdown must not affect close bookkeeping")

	// The peer observes end of stream.
	buf := make([]byte, 8)
	n, err := conn.Read(buf)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, conn.EOF())
}
