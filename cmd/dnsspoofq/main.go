// SPDX-License-Identifier: GPL-3.0-or-later

// Command dnsspoofq sends a single A-record query over UDP and prints
// the decoded response.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/bassosimone/dnsspoof"
	"github.com/bassosimone/runtimex"
	"github.com/miekg/dns"
)

func main() {
	serverAddr := flag.String("server", "127.0.0.1:53", "server address to query")
	name := flag.String("name", "foo.com", "domain name to query")
	timeout := flag.Duration("timeout", 3*time.Second, "response timeout")
	flag.Parse()

	query := dnsspoof.NewQuery(*name)
	packet := runtimex.PanicOnError1(query.Encode())

	conn, err := net.Dial("udp", *serverAddr)
	passOrFatal(err)
	defer conn.Close()

	_, err = conn.Write(packet)
	passOrFatal(err)

	conn.SetReadDeadline(time.Now().Add(*timeout))
	buffer := make([]byte, 4096)
	n, err := conn.Read(buffer)
	passOrFatal(err)

	// Unpack with a reference codec so the output reads like dig.
	msg := new(dns.Msg)
	passOrFatal(msg.Unpack(buffer[:n]))
	fmt.Printf("%s\n", msg.String())
}

func passOrFatal(e error) {
	if e != nil {
		log.Fatalln(e)
	}
}
