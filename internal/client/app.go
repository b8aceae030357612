// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/vaultnote/internal/crypto"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/service"
	"github.com/MKhiriev/vaultnote/internal/store"
)

// App is the command-line client. It parses a single subcommand from its
// argument list, delegates to the note service and renders the result.
//
// Plaintext and passwords only ever touch stdin, stdout and the local
// clipboard; everything that leaves the process is sealed by the service
// layer first.
type App struct {
	notes  service.ClientNoteService
	logger *logger.Logger

	args   []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// copyLink puts a freshly created share link on the system clipboard.
	// Swappable so tests do not touch the real clipboard.
	copyLink func(text string) error
}

// NewApp builds the CLI over an assembled ClientNoteService, reading
// arguments from os.Args and talking to the standard streams.
func NewApp(notes service.ClientNoteService, log *logger.Logger) *App {
	return &App{
		notes:    notes,
		logger:   log,
		args:     os.Args[1:],
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		copyLink: clipboard.WriteAll,
	}
}

// Run dispatches the subcommand and blocks until it completes.
func (a *App) Run() error {
	if len(a.args) == 0 {
		a.printUsage()
		return errors.New("no command given")
	}

	ctx := context.Background()
	command, rest := a.args[0], a.args[1:]

	switch command {
	case "create":
		return a.runCreate(ctx, rest)
	case "read":
		return a.runRead(ctx, rest)
	case "burn":
		return a.runBurn(ctx, rest)
	case "list":
		return a.runList(ctx)
	case "stats":
		return a.runStats(ctx)
	case "version":
		return a.runVersion(ctx)
	case "help", "-h", "--help":
		a.printUsage()
		return nil
	default:
		a.printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (a *App) runCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	password := fs.String("password", "", "protect the note with a password instead of a link key")
	title := fs.String("title", "", "optional note title")
	authorName := fs.String("author-name", "", "optional author name shown to the recipient")
	authorEmail := fs.String("author-email", "", "optional author contact email")
	category := fs.String("category", "", "optional note category")
	maxReads := fs.Int("max-reads", 0, "destroy the note after this many reads")
	maxViews := fs.Int("max-views", 0, "advisory view cap shown to recipients")
	duration := fs.Int("duration", 0, "lifetime in minutes before the note expires")
	burnAfterReading := fs.Bool("burn-after-reading", false, "destroy the note after the first read")
	noClipboard := fs.Bool("no-clipboard", false, "do not copy the share link to the clipboard")

	if err := fs.Parse(args); err != nil {
		return err
	}

	content, err := a.resolveContent(fs.Args())
	if err != nil {
		return err
	}

	params := service.CreateNoteParams{
		Content:            content,
		Password:           *password,
		Title:              optionalString(*title),
		AuthorName:         optionalString(*authorName),
		AuthorEmail:        optionalString(*authorEmail),
		Category:           optionalString(*category),
		MaxReads:           optionalInt(*maxReads),
		MaxViews:           optionalInt(*maxViews),
		Duration:           optionalInt(*duration),
		DeleteAfterReading: *burnAfterReading,
	}

	link, sent, err := a.notes.CreateNote(ctx, params)
	if err != nil {
		return a.presentError(err)
	}

	fmt.Fprintln(a.stdout, link.String())
	fmt.Fprintf(a.stdout, "destroy token: %s\n", sent.DestroyToken)
	if *password != "" {
		fmt.Fprintln(a.stdout, "the recipient needs the password to read this note")
	}

	if !*noClipboard {
		if err := a.copyLink(link.String()); err != nil {
			// headless machines have no clipboard; the link is already
			// printed, so only warn
			a.logger.Warn().Err(err).Str("func", "App.runCreate").Msg("clipboard copy failed")
			fmt.Fprintln(a.stderr, "warning: could not copy the link to the clipboard")
		} else {
			fmt.Fprintln(a.stdout, "share link copied to clipboard")
		}
	}

	return nil
}

func (a *App) runRead(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("read", flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	password := fs.String("password", "", "password for protected notes")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: read <share-link or note-id#key> [-password ...]")
	}

	result, err := a.notes.ReadNote(ctx, fs.Arg(0), *password)
	if err != nil {
		return a.presentError(err)
	}

	if result.Note.Title != nil {
		fmt.Fprintf(a.stdout, "--- %s ---\n", *result.Note.Title)
	}
	fmt.Fprintln(a.stdout, result.Content)

	if result.Note.RemainingReadsPreview != nil {
		fmt.Fprintf(a.stderr, "reads left: %d\n", *result.Note.RemainingReadsPreview)
	}
	if result.Note.DeleteAfterReading {
		fmt.Fprintln(a.stderr, "this note has now been destroyed")
	}

	return nil
}

func (a *App) runBurn(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("burn", flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	token := fs.String("token", "", "destroy token; taken from the local ledger when omitted")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: burn <note-id or share-link> [-token ...]")
	}

	if err := a.notes.BurnNote(ctx, fs.Arg(0), *token); err != nil {
		return a.presentError(err)
	}

	fmt.Fprintln(a.stdout, "note destroyed")
	return nil
}

func (a *App) runList(ctx context.Context) error {
	sent, err := a.notes.ListSent(ctx)
	if err != nil {
		return a.presentError(err)
	}

	if len(sent) == 0 {
		fmt.Fprintln(a.stdout, "no sent notes recorded")
		return nil
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NOTE ID\tCREATED\tURL")
	for _, note := range sent {
		fmt.Fprintf(w, "%s\t%s\t%s\n", note.NoteID, note.CreatedAt.Format("2006-01-02 15:04"), note.URL)
	}
	return w.Flush()
}

func (a *App) runStats(ctx context.Context) error {
	stats, err := a.notes.Stats(ctx)
	if err != nil {
		return a.presentError(err)
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "total notes\t%d\n", stats.TotalNotes)
	fmt.Fprintf(w, "active notes\t%d\n", stats.ActiveNotes)
	fmt.Fprintf(w, "expired notes\t%d\n", stats.ExpiredNotes)
	fmt.Fprintf(w, "protected notes\t%d\n", stats.ProtectedNotes)
	fmt.Fprintf(w, "storage bytes\t%d\n", stats.StorageBytes)
	return w.Flush()
}

func (a *App) runVersion(ctx context.Context) error {
	version, err := a.notes.ServerVersion(ctx)
	if err != nil {
		return a.presentError(err)
	}

	fmt.Fprintf(a.stdout, "server version: %s\n", version)
	return nil
}

// resolveContent takes the note body from the positional arguments, or from
// stdin when none are given so notes can be piped in.
func (a *App) resolveContent(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("error reading note content from stdin: %w", err)
	}

	return strings.TrimRight(string(data), "\n"), nil
}

// presentError rewrites well-known failures into messages that make sense at
// the terminal; anything unrecognized passes through untouched.
func (a *App) presentError(err error) error {
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		return errors.New("note not found: it may never have existed or was already destroyed")
	case errors.Is(err, store.ErrNoteExpired):
		return errors.New("this note has expired")
	case errors.Is(err, store.ErrNoteConsumed):
		return errors.New("this note was already read and has been destroyed")
	case errors.Is(err, crypto.ErrInvalidPassword):
		return errors.New("wrong password")
	case errors.Is(err, service.ErrMissingPassword):
		return errors.New("this note is password protected: pass -password")
	case errors.Is(err, service.ErrMissingFragmentKey):
		return errors.New("the share link is missing its key fragment after '#'")
	case errors.Is(err, service.ErrPasswordTooShort):
		return errors.New("password must be at least 6 characters")
	case errors.Is(err, service.ErrInvalidDestroyToken):
		return errors.New("destroy token does not match")
	case errors.Is(err, service.ErrRateLimited):
		return errors.New("the server is rate limiting this client, try again later")
	default:
		return err
	}
}

func (a *App) printUsage() {
	fmt.Fprint(a.stderr, `vaultnote - zero-knowledge self-destructing notes

usage: vaultnote <command> [flags] [args]

commands:
  create [flags] [content]   seal a note and print its share link
                             (content is read from stdin when omitted)
  read <link> [-password]    fetch and decrypt a note (consumes one read)
  burn <id> [-token]         destroy a note early
  list                       show notes created on this machine
  stats                      show server-side note counters
  version                    show the server build version
  help                       show this message
`)
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func optionalInt(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}
