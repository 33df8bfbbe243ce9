// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingArgs    = errors.New("missing arguments")
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type cli struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	out       io.Writer

	commands map[string]command
}

func newCLI(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, out io.Writer) *cli {
	c := &cli{adapter: serverAdapter, buildInfo: buildInfo, out: out}
	c.commands = map[string]command{
		"register":   {usage: "register -u <username> -p <password>", run: c.register},
		"login":      {usage: "login -u <username> -p <password>", run: c.login},
		"create":     {usage: "create -title <title> [-content <content>]", run: c.create},
		"list":       {usage: "list", run: c.list},
		"get":        {usage: "get <note-id>", run: c.get},
		"delete":     {usage: "delete <note-id>", run: c.delete},
		"delete-all": {usage: "delete-all", run: c.deleteAll},
		"watch":      {usage: "watch", run: c.watch},
		"version":    {usage: "version", run: c.version},
	}
	return c
}

// run dispatches args[0] to the matching command. A global -token flag
// placed before the command overrides CLIENT_TOKEN.
func (c *cli) run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("notekeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	token := fs.String("token", "", "bearer token for authenticated commands")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *token != "" {
		c.adapter.SetToken(*token)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		c.printUsage()
		return errMissingArgs
	}

	cmd, ok := c.commands[rest[0]]
	if !ok {
		c.printUsage()
		return fmt.Errorf("%w: %s", errUnknownCommand, rest[0])
	}

	return cmd.run(ctx, rest[1:])
}

func (c *cli) printUsage() {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(c.out, "usage: notekeeper [-token <token>] <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(c.out, "  %s\n", c.commands[name].usage)
	}
}

func credentialsFlags(name string, args []string) (models.User, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return models.User{}, err
	}
	if *username == "" || *password == "" {
		return models.User{}, fmt.Errorf("%w: -u and -p are required", errMissingArgs)
	}

	return models.User{Username: *username, Password: *password}, nil
}

func (c *cli) register(ctx context.Context, args []string) error {
	user, err := credentialsFlags("register", args)
	if err != nil {
		return err
	}
	if err = c.adapter.Register(ctx, user); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "User registered successfully")
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	user, err := credentialsFlags("login", args)
	if err != nil {
		return err
	}

	token, err := c.adapter.Login(ctx, user)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, token)
	return nil
}

func (c *cli) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", "", "note title")
	content := fs.String("content", "", "note content")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*title) == "" {
		return fmt.Errorf("%w: -title is required", errMissingArgs)
	}

	note, err := c.adapter.CreateNote(ctx, models.NoteInput{Title: *title, Content: *content})
	if err != nil {
		return err
	}

	return c.printJSON(note)
}

func (c *cli) list(ctx context.Context, _ []string) error {
	notes, err := c.adapter.ListNotes(ctx)
	if err != nil {
		return err
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return c.printJSON(notes)
}

func (c *cli) get(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: note id", errMissingArgs)
	}

	note, err := c.adapter.GetNote(ctx, args[0])
	if err != nil {
		return err
	}

	return c.printJSON(note)
}

func (c *cli) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: note id", errMissingArgs)
	}
	if err := c.adapter.DeleteNote(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Note deleted successfully")
	return nil
}

func (c *cli) deleteAll(ctx context.Context, _ []string) error {
	n, err := c.adapter.DeleteAllNotes(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Deleted %d notes\n", n)
	return nil
}

// watch streams change messages as JSON lines until interrupted.
func (c *cli) watch(ctx context.Context, _ []string) error {
	enc := json.NewEncoder(c.out)
	return c.adapter.Watch(ctx, func(message models.RealtimeMessage) {
		_ = enc.Encode(message)
	})
}

func (c *cli) version(ctx context.Context, _ []string) error {
	fmt.Fprintf(c.out, "client: %s (%s, %s)\n", c.buildInfo.BuildVersion(), c.buildInfo.BuildCommit(), c.buildInfo.BuildDate())

	serverVersion, err := c.adapter.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "server: %s\n", serverVersion)
	return nil
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
