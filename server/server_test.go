// SPDX-License-Identifier: GPL-3.0-or-later

package server

import (
	"net"
	"testing"
	"time"

	"github.com/bassosimone/dnsspoof"
	"github.com/bassosimone/runtimex"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T) *Server {
	t.Helper()
	srv := New("127.0.0.1:0", [4]byte{6, 6, 6, 6})
	require.NoError(t, srv.Start())
	t.Cleanup(srv.Stop)
	return srv
}

func exchange(t *testing.T, srv *Server, datagram []byte) ([]byte, error) {
	t.Helper()
	conn, err := net.Dial("udp", srv.LocalAddr().String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write(datagram)
	require.NoError(t, err)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	buffer := make([]byte, 4096)
	n, err := conn.Read(buffer)
	if err != nil {
		return nil, err
	}
	return buffer[:n], nil
}

func TestServerSpoofsQueries(t *testing.T) {
	srv := startTestServer(t)

	query := runtimex.PanicOnError1(dnsspoof.BuildQuery("foo.com"))
	raw, err := exchange(t, srv, query)
	require.NoError(t, err)
	require.Len(t, raw, 41)

	msg := new(dns.Msg)
	require.NoError(t, msg.Unpack(raw))
	require.True(t, msg.Response)
	require.Equal(t, uint16(0xaabb), msg.Id)
	require.Len(t, msg.Answer, 1)

	answer, ok := msg.Answer[0].(*dns.A)
	require.True(t, ok)
	require.Equal(t, "foo.com.", answer.Hdr.Name)
	require.True(t, answer.A.Equal(net.IPv4(6, 6, 6, 6)))
}

func TestServerDropsMalformedDatagrams(t *testing.T) {
	srv := startTestServer(t)

	// A datagram shorter than the fixed header is dropped silently:
	// the read must time out rather than receive a reply.
	_, err := exchange(t, srv, []byte{0x01, 0x02, 0x03})
	require.Error(t, err)
	netErr, ok := err.(net.Error)
	require.True(t, ok)
	require.True(t, netErr.Timeout())

	// The loop must survive the bad datagram and keep answering.
	query := runtimex.PanicOnError1(dnsspoof.BuildQuery("foo.com"))
	raw, err := exchange(t, srv, query)
	require.NoError(t, err)
	require.Len(t, raw, 41)
}
