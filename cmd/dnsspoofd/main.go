// SPDX-License-Identifier: GPL-3.0-or-later

// Command dnsspoofd listens on the DNS port and answers every A-record
// query with a fixed spoofed address.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bassosimone/dnsspoof/config"
	"github.com/bassosimone/dnsspoof/server"
)

func main() {
	configFile := flag.String("c", "", "config file location (optional)")
	addr := flag.String("addr", "", "bind address (overrides config)")
	spoofedIP := flag.String("ip", "", "spoofed answer IPv4 address (overrides config)")
	flag.Parse()

	conf := config.Default()
	if *configFile != "" {
		file, err := os.Open(*configFile)
		passOrFatal(err)
		conf, err = config.Parse(file)
		file.Close()
		passOrFatal(err)
	}
	if *addr != "" {
		conf.Addr = *addr
	}
	if *spoofedIP != "" {
		conf.SpoofedIP = *spoofedIP
	}

	spoofed, err := conf.SpoofedAddr()
	passOrFatal(err)

	srv := server.New(conf.ListenAddr(), spoofed)
	passOrFatal(srv.Start())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	srv.Stop()
}

func passOrFatal(e error) {
	if e != nil {
		log.Fatalln(e)
	}
}
