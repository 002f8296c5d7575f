// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"flag"
	"io"
	"strings"

	"github.com/MKhiriev/pwdmngr/models"
)

// listFlag collects every occurrence of a repeated flag.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// commandFlags holds the flag values shared by all subcommands.
type commandFlags struct {
	set *flag.FlagSet

	masterPassword string
	masterKey      string
	domain         string
	username       string
}

func newCommandFlags(name string, output io.Writer) *commandFlags {
	f := &commandFlags{set: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.set.SetOutput(output)

	f.set.StringVar(&f.masterPassword, "master-password", "", "master password")
	f.set.StringVar(&f.masterKey, "master-key", "", "master key (non-negative integer)")
	f.set.StringVar(&f.domain, "domain", "", "credential domain")
	f.set.StringVar(&f.username, "username", "", "credential username")

	return f
}

func (f *commandFlags) master() models.MasterInput {
	return models.MasterInput{Password: f.masterPassword, Key: f.masterKey}
}

// optional returns a pointer to value when the named flag was given on the
// command line, and nil otherwise.
func (f *commandFlags) optional(name, value string) *string {
	given := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			given = true
		}
	})
	if !given {
		return nil
	}

	return &value
}
