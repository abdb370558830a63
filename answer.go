// SPDX-License-Identifier: GPL-3.0-or-later

package dnsspoof

import (
	"encoding/binary"

	"github.com/miekg/dns"
)

// AnswerSize is the size in octets of the fixed-form A answer produced
// by [EncodeAnswerA]: a 2-octet compression pointer, type, class, TTL,
// RDLENGTH, and the 4-octet address.
const AnswerSize = 16

// EncodeAnswerA encodes a single A resource record carrying ip.
//
// The record name is a compression pointer back to offset 12, the
// start of the question section, so the answer names whatever the
// client asked for. The TTL is zero so clients never cache the spoofed
// address and every lookup comes back to us.
func EncodeAnswerA(ip [4]byte) []byte {
	answer := make([]byte, AnswerSize)
	answer[0] = 0xc0 // top two bits set: compression pointer
	answer[1] = HeaderSize
	binary.BigEndian.PutUint16(answer[2:4], dns.TypeA)
	binary.BigEndian.PutUint16(answer[4:6], dns.ClassINET)
	binary.BigEndian.PutUint32(answer[6:10], 0) // TTL
	binary.BigEndian.PutUint16(answer[10:12], 4)
	copy(answer[12:16], ip[:])
	return answer
}
