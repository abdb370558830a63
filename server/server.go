// SPDX-License-Identifier: GPL-3.0-or-later

// Package server runs the UDP responder loop around the codec: bind,
// receive a datagram, build the spoofed reply, send it back. The codec
// stays free of sockets; this package owns the transport.
package server

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/bassosimone/dnsspoof"
)

// readBufferSize is the largest datagram we accept.
const readBufferSize = 4096

// readDeadline bounds each blocking read so Stop is honored promptly.
const readDeadline = time.Second

// Server is a long-lived UDP responder handle. Construct with [New],
// then call [*Server.Start] and eventually [*Server.Stop].
type Server struct {
	addr      string
	responder *dnsspoof.Responder
	conn      *net.UDPConn
	shutdown  chan struct{}
	done      chan struct{}
}

// New creates a server that binds addr (host:port) and answers every
// query with an A record carrying spoofed.
func New(addr string, spoofed [4]byte) *Server {
	return &Server{
		addr:      addr,
		responder: &dnsspoof.Responder{Addr: spoofed},
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start binds the UDP socket and begins serving in the background.
func (s *Server) Start() error {
	udpAddr, err := net.ResolveUDPAddr("udp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to resolve address: %w", err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.conn = conn
	log.Printf("dnsspoof: listening on %s", conn.LocalAddr())
	go s.serve()
	return nil
}

// Stop terminates the serve loop and closes the socket. It blocks
// until the loop has exited.
func (s *Server) Stop() {
	close(s.shutdown)
	<-s.done
	s.conn.Close()
	log.Printf("dnsspoof: stopped")
}

// LocalAddr returns the bound socket address. Only valid after a
// successful [*Server.Start]; handy when binding port 0.
func (s *Server) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

// serve is the blocking receive/decode/encode/send loop. A read
// timeout just means nothing arrived: keep looping. Decode errors are
// logged and the datagram is dropped; nothing here is fatal.
func (s *Server) serve() {
	defer close(s.done)
	buffer := make([]byte, readBufferSize)
	for {
		select {
		case <-s.shutdown:
			return
		default:
			s.conn.SetReadDeadline(time.Now().Add(readDeadline))
			n, client, err := s.conn.ReadFromUDP(buffer)
			if err != nil {
				if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
					continue
				}
				log.Printf("dnsspoof: read: %v", err)
				continue
			}
			s.handle(buffer[:n], client)
		}
	}
}

// handle answers a single query datagram.
func (s *Server) handle(query []byte, client *net.UDPAddr) {
	response, err := s.responder.Respond(query)
	if err != nil {
		log.Printf("dnsspoof: dropping %d bytes from %s: %v", len(query), client, err)
		return
	}
	if name, err := dnsspoof.QueryName(query); err == nil {
		log.Printf("dnsspoof: %s asked for %q, spoofing %v", client, name, s.responder.Addr)
	}
	if _, err := s.conn.WriteToUDP(response, client); err != nil {
		log.Printf("dnsspoof: write to %s: %v", client, err)
	}
}
