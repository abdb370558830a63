// SPDX-License-Identifier: GPL-3.0-or-later

package dnsspoof

import "errors"

// Errors emitted by the codec. All of them are per-datagram: the caller
// decides whether to drop the datagram or answer with a format error.
var (
	// ErrNameFormat means a domain name cannot be label-encoded, for
	// example because it contains an empty label (consecutive dots or a
	// leading/trailing dot) or a label longer than 63 octets.
	ErrNameFormat = errors.New("malformed domain name")

	// ErrTruncatedPacket means the question-section scan ran past the
	// end of the packet or never found the name terminator.
	ErrTruncatedPacket = errors.New("truncated DNS packet")

	// ErrMalformedQuery means a received query is shorter than the
	// fixed header or its question section cannot be delimited.
	ErrMalformedQuery = errors.New("malformed DNS query")
)
