// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client talks to a running pwdmngr server.
//
// Usage:
//
//	client [config flags] insert  -master-password P -master-key K -domain D -username U -secret S [-secret S2 ...]
//	client [config flags] search  -master-password P -master-key K -domain D [-username U]
//	client [config flags] secrets -master-password P -master-key K -domain D [-username U] [-copy]
//	client [config flags] update  -master-password P -master-key K -domain D [-username U] [-new-username N] [-new-secret S ...]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/pwdmngr/internal/adapter"
	"github.com/MKhiriev/pwdmngr/internal/client"
	"github.com/MKhiriev/pwdmngr/internal/config"
	"github.com/MKhiriev/pwdmngr/internal/logger"
)

func main() {
	log := logger.NewConsoleLogger("pwdmngr-client", os.Stderr)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, clipboard.WriteAll, os.Stdout, log)
	if err = app.Run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
