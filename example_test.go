// SPDX-License-Identifier: GPL-3.0-or-later

package dnsspoof_test

import (
	"fmt"

	"github.com/bassosimone/dnsspoof"
	"github.com/bassosimone/runtimex"
	"github.com/miekg/dns"
)

// unpack decodes raw with the reference codec so the examples print
// dig-like output.
func unpack(raw []byte) *dns.Msg {
	msg := new(dns.Msg)
	if err := msg.Unpack(raw); err != nil {
		panic(err)
	}
	return msg
}

func Example_buildQuery() {
	raw := runtimex.PanicOnError1(dnsspoof.BuildQuery("foo.com"))
	fmt.Printf("%s\n", unpack(raw).String())

	// Output:
	//
	// ;; opcode: QUERY, status: NOERROR, id: 43707
	// ;; flags: rd; QUERY: 1, ANSWER: 0, AUTHORITY: 0, ADDITIONAL: 0
	//
	// ;; QUESTION SECTION:
	// ;foo.com.	IN	 A
}

func Example_buildResponse() {
	query := runtimex.PanicOnError1(dnsspoof.BuildQuery("foo.com"))
	raw := runtimex.PanicOnError1(dnsspoof.BuildResponse(query, [4]byte{6, 6, 6, 6}))
	fmt.Printf("%s\n", unpack(raw).String())

	// Output:
	//
	// ;; opcode: QUERY, status: NOERROR, id: 43707
	// ;; flags: qr rd ra; QUERY: 1, ANSWER: 1, AUTHORITY: 0, ADDITIONAL: 0
	//
	// ;; QUESTION SECTION:
	// ;foo.com.	IN	 A
	//
	// ;; ANSWER SECTION:
	// foo.com.	0	IN	A	6.6.6.6
}
