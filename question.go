// SPDX-License-Identifier: GPL-3.0-or-later

package dnsspoof

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// maxLabelSize is the longest label a single length octet can
// introduce without colliding with the compression-pointer bits.
const maxLabelSize = 63

// EncodeQuestion encodes the question section for domain: each dot
// separated label becomes a length octet followed by the label bytes,
// the name ends with a zero octet, and qtype and qclass follow as
// big-endian 16-bit values.
//
// The domain must already be ASCII; see [*Query.Encode] for the IDNA
// mapping of unicode names. Returns [ErrNameFormat] if domain contains
// an empty label or a label longer than 63 octets.
func EncodeQuestion(domain string, qtype, qclass uint16) ([]byte, error) {
	labels := strings.Split(domain, ".")
	question := make([]byte, 0, len(domain)+6)
	for _, label := range labels {
		if len(label) == 0 {
			return nil, fmt.Errorf("%w: empty label in %q", ErrNameFormat, domain)
		}
		if len(label) > maxLabelSize {
			return nil, fmt.Errorf("%w: label %q longer than %d octets",
				ErrNameFormat, label, maxLabelSize)
		}
		question = append(question, byte(len(label)))
		question = append(question, label...)
	}
	question = append(question, 0)
	question = binary.BigEndian.AppendUint16(question, qtype)
	question = binary.BigEndian.AppendUint16(question, qclass)
	return question, nil
}

// QuestionEnd returns the offset just past the question section of a
// raw single-question packet: it walks the length-prefixed labels
// starting right after the fixed header, then skips the terminator and
// the QTYPE/QCLASS octets. This offset is the authoritative boundary
// between the question and whatever follows it.
//
// Returns [ErrTruncatedPacket] if a length octet would send the walk
// past the end of the packet, if no terminator is found, or if the
// QTYPE/QCLASS octets are missing. Never reads out of bounds.
func QuestionEnd(packet []byte) (int, error) {
	cursor := HeaderSize
	for {
		if cursor >= len(packet) {
			return 0, fmt.Errorf("%w: question name runs past end of packet",
				ErrTruncatedPacket)
		}
		length := int(packet[cursor])
		if length == 0 {
			end := cursor + 1 + 4 // terminator plus QTYPE and QCLASS
			if end > len(packet) {
				return 0, fmt.Errorf("%w: question type and class missing",
					ErrTruncatedPacket)
			}
			return end, nil
		}
		cursor += length + 1
	}
}

// maxPointerJumps bounds compression-pointer chasing so a malicious
// packet cannot loop [QueryName] forever.
const maxPointerJumps = 5

// QueryName decodes the dotted question name starting right after the
// fixed header. Compression pointers are followed, which lets callers
// print the name out of any well-formed packet, not only queries.
//
// Returns [ErrTruncatedPacket] if the name runs past the packet end and
// [ErrNameFormat] if pointer chasing exceeds the jump limit.
func QueryName(packet []byte) (string, error) {
	var name strings.Builder
	cursor := HeaderSize
	jumps := 0
	for {
		if cursor >= len(packet) {
			return "", fmt.Errorf("%w: name runs past end of packet",
				ErrTruncatedPacket)
		}
		length := int(packet[cursor])
		if length == 0 {
			return name.String(), nil
		}
		if length&0xc0 == 0xc0 {
			if cursor+1 >= len(packet) {
				return "", fmt.Errorf("%w: dangling compression pointer",
					ErrTruncatedPacket)
			}
			jumps++
			if jumps > maxPointerJumps {
				return "", fmt.Errorf("%w: too many compression jumps",
					ErrNameFormat)
			}
			cursor = int(binary.BigEndian.Uint16(packet[cursor:cursor+2]) & 0x3fff)
			continue
		}
		if cursor+1+length > len(packet) {
			return "", fmt.Errorf("%w: label runs past end of packet",
				ErrTruncatedPacket)
		}
		if name.Len() > 0 {
			name.WriteByte('.')
		}
		name.Write(packet[cursor+1 : cursor+1+length])
		cursor += length + 1
	}
}
