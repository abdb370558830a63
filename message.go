// SPDX-License-Identifier: GPL-3.0-or-later

package dnsspoof

import (
	"fmt"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// DefaultQueryID is the fixed identifier used by [BuildQuery]. Use
// [NewQuery] instead when you need an unpredictable identifier.
const DefaultQueryID uint16 = 0xaabb

// Query is an outgoing A-record query.
//
// Construct using [NewQuery] or set the MANDATORY fields.
type Query struct {
	// ID is the OPTIONAL query identifier.
	ID uint16

	// Name is the MANDATORY domain name to query.
	Name string
}

// NewQuery constructs a new [*Query] for name with a randomized
// identifier obtained from [dns.Id].
func NewQuery(name string) *Query {
	return &Query{
		ID:   dns.Id(),
		Name: name,
	}
}

// Encode serializes the query into a transmittable packet: a standard
// query header requesting recursion followed by a single A/IN question
// for the IDNA-mapped name.
func (q *Query) Encode() ([]byte, error) {
	// IDNA encode the domain name.
	punyName, err := idna.Lookup.ToASCII(q.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNameFormat, err)
	}

	question, err := EncodeQuestion(punyName, dns.TypeA, dns.ClassINET)
	if err != nil {
		return nil, err
	}

	header := &Header{
		ID:      q.ID,
		RD:      true,
		QDCount: 1,
	}

	packet := make([]byte, 0, HeaderSize+len(question))
	packet = append(packet, header.Encode()...)
	packet = append(packet, question...)
	return packet, nil
}

// BuildQuery encodes an A-record query for domain using the fixed
// [DefaultQueryID] identifier.
func BuildQuery(domain string) ([]byte, error) {
	query := &Query{
		ID:   DefaultQueryID,
		Name: domain,
	}
	return query.Encode()
}

// BuildResponse builds the spoofed reply for the raw query bytes: the
// derived response header, the client's question bytes echoed verbatim,
// and a single A record carrying spoofed.
//
// The question is copied straight out of query rather than re-encoded,
// so the reply preserves whatever casing or encoding quirks the client
// sent. The query buffer is only read; it is never modified.
//
// Returns [ErrMalformedQuery] if query is shorter than the fixed header
// or its question section cannot be delimited.
func BuildResponse(query []byte, spoofed [4]byte) ([]byte, error) {
	queryHeader, err := DecodeHeader(query)
	if err != nil {
		return nil, err
	}

	questionEnd, err := QuestionEnd(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedQuery, err)
	}

	header, err := ResponseHeader(queryHeader).EncodeEchoing(query)
	if err != nil {
		return nil, err
	}

	packet := make([]byte, 0, questionEnd+AnswerSize)
	packet = append(packet, header...)
	packet = append(packet, query[HeaderSize:questionEnd]...)
	packet = append(packet, EncodeAnswerA(spoofed)...)
	return packet, nil
}

// Responder answers every A-record query with the same spoofed
// address. The zero value answers with 0.0.0.0.
//
// A Responder holds no state across calls and is safe for concurrent
// use, provided each query buffer is not mutated while the call that
// borrowed it is in flight.
type Responder struct {
	// Addr is the IPv4 address returned in every answer.
	Addr [4]byte
}

// Respond builds the spoofed reply for a received query datagram.
func (r *Responder) Respond(query []byte) ([]byte, error) {
	return BuildResponse(query, r.Addr)
}
