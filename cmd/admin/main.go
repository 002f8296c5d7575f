// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command admin provisions a pwdmngr database: it registers API keys and
// sets the master credential reference.
//
// Usage:
//
//	admin [config flags] add-auth-key <key>
//	admin [config flags] set-master <password> <key>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/pwdmngr/internal/config"
	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/internal/service"
	"github.com/MKhiriev/pwdmngr/internal/store"
	"github.com/MKhiriev/pwdmngr/models"
)

var errUsage = errors.New("usage: admin [flags] add-auth-key <key> | set-master <password> <key>")

func main() {
	log := logger.NewConsoleLogger("pwdmngr-admin", os.Stderr)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(store.NewStorages(db, log), *cfg, log)
	if err = run(ctx, services, flag.Args()); err != nil {
		log.Error().Err(err).Msg("command failed")
		db.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, services *service.Services, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch {
	case args[0] == "add-auth-key" && len(args) == 2:
		if err := services.AuthService.RegisterAuthKey(ctx, args[1]); err != nil {
			return fmt.Errorf("register auth key: %w", err)
		}
		fmt.Println("Auth key registered.")
	case args[0] == "set-master" && len(args) == 3:
		master := models.MasterInput{Password: args[1], Key: args[2]}
		if err := services.MasterCredentialService.Provision(ctx, master); err != nil {
			return fmt.Errorf("set master credential: %w", err)
		}
		fmt.Println("Master credential set.")
	default:
		return errUsage
	}

	return nil
}
