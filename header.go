// SPDX-License-Identifier: GPL-3.0-or-later

package dnsspoof

import (
	"encoding/binary"
	"fmt"

	"github.com/miekg/dns"
)

// HeaderSize is the size of the fixed DNS message header in octets.
const HeaderSize = 12

// Header is the fixed 12-octet DNS message header (RFC 1035
// section 4.1.1).
//
// The zero value is a standard query header with no questions; callers
// typically set at least ID, RD, and QDCount.
type Header struct {
	// ID is the identifier echoed verbatim by responses.
	ID uint16

	// QR is false for queries and true for responses.
	QR bool

	// Opcode is the query kind: 0 is a standard query.
	Opcode uint8

	// AA is the authoritative-answer flag.
	AA bool

	// TC is the truncation flag.
	TC bool

	// RD is the recursion-desired flag.
	RD bool

	// RA is the recursion-available flag.
	RA bool

	// Z is reserved and must be zero.
	Z uint8

	// Rcode is the response code; use the [dns.RcodeSuccess] family
	// of constants.
	Rcode uint8

	// QDCount, ANCount, NSCount, ARCount are the section entry counts.
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

func b2i(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

// Encode packs h into its 12-octet big-endian wire form.
func (h *Header) Encode() []byte {
	packet := make([]byte, HeaderSize)
	binary.BigEndian.PutUint16(packet[0:2], h.ID)
	packet[2] = b2i(h.QR)<<7 | h.Opcode<<3 | b2i(h.AA)<<2 | b2i(h.TC)<<1 | b2i(h.RD)
	packet[3] = b2i(h.RA)<<7 | h.Z<<4 | h.Rcode
	binary.BigEndian.PutUint16(packet[4:6], h.QDCount)
	binary.BigEndian.PutUint16(packet[6:8], h.ANCount)
	binary.BigEndian.PutUint16(packet[8:10], h.NSCount)
	binary.BigEndian.PutUint16(packet[10:12], h.ARCount)
	return packet
}

// EncodeEchoing packs h like [*Header.Encode] but copies the identifier
// and question-count octets verbatim from the raw query header instead
// of re-encoding the structured fields. This is the passthrough path
// used when answering: the reply carries the exact bytes the client
// sent. Returns [ErrMalformedQuery] if rawQuery is shorter than the
// fixed header.
func (h *Header) EncodeEchoing(rawQuery []byte) ([]byte, error) {
	if len(rawQuery) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d",
			ErrMalformedQuery, len(rawQuery), HeaderSize)
	}
	packet := h.Encode()
	copy(packet[0:2], rawQuery[0:2])
	copy(packet[4:6], rawQuery[4:6])
	return packet, nil
}

// DecodeHeader parses the fixed header at the front of packet. Returns
// [ErrMalformedQuery] if packet is shorter than the fixed header.
func DecodeHeader(packet []byte) (*Header, error) {
	if len(packet) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d",
			ErrMalformedQuery, len(packet), HeaderSize)
	}
	header := &Header{
		ID:      binary.BigEndian.Uint16(packet[0:2]),
		QR:      packet[2]&0x80 != 0,
		Opcode:  (packet[2] & 0x78) >> 3,
		AA:      packet[2]&0x04 != 0,
		TC:      packet[2]&0x02 != 0,
		RD:      packet[2]&0x01 != 0,
		RA:      packet[3]&0x80 != 0,
		Z:       (packet[3] & 0x70) >> 4,
		Rcode:   packet[3] & 0x0f,
		QDCount: binary.BigEndian.Uint16(packet[4:6]),
		ANCount: binary.BigEndian.Uint16(packet[6:8]),
		NSCount: binary.BigEndian.Uint16(packet[8:10]),
		ARCount: binary.BigEndian.Uint16(packet[10:12]),
	}
	return header, nil
}

// ResponseHeader derives the header of a spoofed reply to query.
//
// The identifier and question count are copied, opcode and the TC/RD
// flags are preserved, and the reply announces exactly one answer with
// recursion available. A non-standard opcode is answered with
// [dns.RcodeNotImplemented] since we only speak standard queries.
func ResponseHeader(query *Header) *Header {
	rcode := uint8(dns.RcodeSuccess)
	if query.Opcode != 0 {
		rcode = uint8(dns.RcodeNotImplemented)
	}
	return &Header{
		ID:      query.ID,
		QR:      true,
		Opcode:  query.Opcode,
		AA:      false,
		TC:      query.TC,
		RD:      query.RD,
		RA:      true,
		Z:       0,
		Rcode:   rcode,
		QDCount: query.QDCount,
		ANCount: 1,
		NSCount: 0,
		ARCount: 0,
	}
}
