// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnsspoof is a minimal DNS wire-format codec for an
// address-spoofing UDP responder.
//
// [BuildQuery] and [*Query] construct and pack an outgoing A-record
// query. [BuildResponse] and [*Responder] decode a received query and
// pack a reply carrying a single fixed A record whose RDATA is the
// spoofed IPv4 address.
//
// Unlike [github.com/miekg/dns], this package implements the header,
// question, and answer serialization by hand, bit by bit. The response
// path never re-serializes the client's question: it echoes the exact
// question bytes from the received datagram, so any casing or encoding
// quirks survive verbatim.
//
// Every function is a pure transformation over byte buffers: no I/O,
// no shared state, safe for concurrent use.
package dnsspoof
