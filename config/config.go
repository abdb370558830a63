// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the responder configuration from YAML.
package config

import (
	"fmt"
	"io"
	"net"
	"net/netip"

	"gopkg.in/yaml.v2"
)

// Config holds the responder configuration.
type Config struct {
	// Addr is the bind address.
	Addr string `yaml:"addr,omitempty"`

	// Port is the bind port.
	Port int `yaml:"port,omitempty"`

	// SpoofedIP is the IPv4 address returned in every answer.
	SpoofedIP string `yaml:"spoofedIP,omitempty"`
}

// Default returns a config with default values: loopback, the DNS
// port, and a placeholder answer address.
func Default() *Config {
	return &Config{
		Addr:      "127.0.0.1",
		Port:      53,
		SpoofedIP: "6.6.6.6",
	}
}

// Parse decodes a YAML config from r. Fields missing from the document
// keep their [Default] values.
func Parse(r io.Reader) (*Config, error) {
	conf := Default()
	if err := yaml.NewDecoder(r).Decode(conf); err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}
	return conf, nil
}

// ListenAddr returns the host:port string to bind.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Addr, fmt.Sprintf("%d", c.Port))
}

// SpoofedAddr parses SpoofedIP into the 4-octet form the codec wants.
func (c *Config) SpoofedAddr() ([4]byte, error) {
	addr, err := netip.ParseAddr(c.SpoofedIP)
	if err != nil {
		return [4]byte{}, fmt.Errorf("invalid spoofed IP: %w", err)
	}
	if !addr.Is4() {
		return [4]byte{}, fmt.Errorf("invalid spoofed IP: %s is not IPv4", c.SpoofedIP)
	}
	return addr.As4(), nil
}
