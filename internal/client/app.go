// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/pwdmngr/internal/adapter"
	"github.com/MKhiriev/pwdmngr/internal/logger"
	"github.com/MKhiriev/pwdmngr/models"
)

// CopyFunc places text on the system clipboard.
type CopyFunc func(text string) error

// App runs one client command against a pwdmngr server.
type App struct {
	adapter adapter.ServerAdapter
	copy    CopyFunc
	out     io.Writer

	logger *logger.Logger
}

// NewApp constructs an [App]. copyFn may be nil when no clipboard is
// available; the -copy flag then fails with [ErrNoClipboard].
func NewApp(serverAdapter adapter.ServerAdapter, copyFn CopyFunc, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		copy:    copyFn,
		out:     out,
		logger:  logger,
	}
}

// Run implements [Client]. args[0] names the command; the rest are its
// flags.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: want one of insert, search, secrets, update", ErrNoCommand)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("func", "*App.Run").Str("command", command).Msg("running command")

	switch command {
	case "insert":
		return a.insert(ctx, rest)
	case "search":
		return a.search(ctx, rest)
	case "secrets":
		return a.secrets(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) insert(ctx context.Context, args []string) error {
	f := newCommandFlags("insert", a.out)
	var secrets listFlag
	f.set.Var(&secrets, "secret", "secret to store (repeatable)")
	if err := f.set.Parse(args); err != nil {
		return err
	}

	err := a.adapter.Insert(ctx, models.InsertRequest{
		Master:   f.master(),
		Domain:   f.domain,
		Username: f.username,
		Secrets:  secrets,
	})
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	_, err = fmt.Fprintln(a.out, "Success!")
	return err
}

func (a *App) search(ctx context.Context, args []string) error {
	f := newCommandFlags("search", a.out)
	if err := f.set.Parse(args); err != nil {
		return err
	}

	summaries, err := a.adapter.Search(ctx, models.QueryRequest{
		Master:   f.master(),
		Type:     models.QuerySearch,
		Domain:   f.domain,
		Username: f.optional("username", f.username),
	})
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if len(summaries) == 0 {
		_, err = fmt.Fprintln(a.out, "No matches.")
		return err
	}
	for _, s := range summaries {
		if _, err = fmt.Fprintf(a.out, "%s\t%s\n", s.Domain, s.Username); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) secrets(ctx context.Context, args []string) error {
	f := newCommandFlags("secrets", a.out)
	copyFirst := f.set.Bool("copy", false, "copy the first secret to the clipboard instead of printing")
	if err := f.set.Parse(args); err != nil {
		return err
	}

	credential, err := a.adapter.GetSecrets(ctx, models.QueryRequest{
		Master:   f.master(),
		Type:     models.QuerySecrets,
		Domain:   f.domain,
		Username: f.optional("username", f.username),
	})
	if err != nil {
		return fmt.Errorf("secrets: %w", err)
	}

	if *copyFirst {
		return a.copySecret(credential)
	}

	if _, err = fmt.Fprintf(a.out, "%s\t%s\n", credential.Domain, credential.Username); err != nil {
		return err
	}
	for _, secret := range credential.Secrets {
		if _, err = fmt.Fprintln(a.out, secret); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) copySecret(credential models.Credential) error {
	if a.copy == nil {
		return ErrNoClipboard
	}
	if len(credential.Secrets) == 0 {
		return ErrNothingToCopy
	}

	if err := a.copy(credential.Secrets[0]); err != nil {
		return fmt.Errorf("%w: %w", ErrNoClipboard, err)
	}

	_, err := fmt.Fprintf(a.out, "Copied first secret of %s/%s to the clipboard.\n", credential.Domain, credential.Username)
	return err
}

func (a *App) update(ctx context.Context, args []string) error {
	f := newCommandFlags("update", a.out)
	var newUsername string
	var newSecrets listFlag
	f.set.StringVar(&newUsername, "new-username", "", "new username")
	f.set.Var(&newSecrets, "new-secret", "replacement secret (repeatable)")
	if err := f.set.Parse(args); err != nil {
		return err
	}

	err := a.adapter.Update(ctx, models.UpdateRequest{
		Master:      f.master(),
		Domain:      f.domain,
		Username:    f.optional("username", f.username),
		NewUsername: f.optional("new-username", newUsername),
		NewSecrets:  newSecrets,
	})
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	_, err = fmt.Fprintln(a.out, "Success!")
	return err
}
