// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags registered on
// flag.CommandLine. Flags registered by the caller before the call are
// parsed too, and positional arguments stay available through flag.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-max-retries retry budget for transient database errors
//	-c/-config json file path with configs
//	-auth-hash-key HMAC key for API key hashing
//	-bcrypt-cost bcrypt work factor for master credential hashes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-server-url server base URL used by the client
//	-client-timeout client request timeout
//	-auth-key API key used by the client
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var dbMaxRetries int
	var jsonConfigPath string
	var authKeyHashKey string
	var bcryptCost int
	var requestTimeout time.Duration
	var serverURL string
	var clientTimeout time.Duration
	var authKey string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN (postgres:// URL or SQLite file)")
	flag.IntVar(&dbMaxRetries, "db-max-retries", 0, "Retries for transient database errors")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&authKeyHashKey, "auth-hash-key", "", "HMAC key for API key hashing")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "bcrypt cost for master credential hashes")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&serverURL, "server-url", "", "Server base URL used by the client")
	flag.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")
	flag.StringVar(&authKey, "auth-key", "", "API key sent by the client")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AuthKeyHashKey: authKeyHashKey,
			BcryptCost:     bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN:        databaseDSN,
				MaxRetries: dbMaxRetries,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: clientTimeout,
			AuthKey:        authKey,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
