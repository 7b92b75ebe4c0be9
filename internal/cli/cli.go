// Package cli is the journal's command-line shell: `journal <resource> <verb> [flags]`.
// It turns arguments into service calls and prints the results. Business rules
// live in the service layer; this package only formats and maps errors.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/service"
)

// Services bundles everything the commands call into.
type Services struct {
	Trips        *service.TripService
	Destinations *service.DestinationService
	Activities   *service.ActivityService
	Reference    *service.ReferenceService
	Export       *service.ExportService
	Seed         *service.SeedService
}

// NewServices constructs every service on top of the same store.
func NewServices(store service.Transactor) Services {
	return Services{
		Trips:        service.NewTripService(store),
		Destinations: service.NewDestinationService(store),
		Activities:   service.NewActivityService(store),
		Reference:    service.NewReferenceService(store),
		Export:       service.NewExportService(store),
		Seed:         service.NewSeedService(store),
	}
}

// App runs one command per Run call. Results go to out; usage text and
// unexpected errors go to errOut.
type App struct {
	svc    Services
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
}

// New constructs an App. A nil logger discards command logs.
func New(svc Services, out, errOut io.Writer, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{svc: svc, out: out, errOut: errOut, log: log}
}

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type command struct {
	usage string
	run   func(ctx context.Context, a *App, args []string) error
}

// commands is keyed by "resource verb", or just "resource" for commands
// without a verb.
var commands = map[string]command{
	"trip add":           {"-name NAME [-start DATE] [-end DATE] [-notes TEXT] [-category NAME] [-tags a,b]", tripAdd},
	"trip list":          {"", tripList},
	"trip search":        {"-q KEYWORD", tripSearch},
	"trip summary":       {"-id ID", tripSummary},
	"trip delete":        {"-id ID", tripDelete},
	"destination add":    {"-trip ID -name NAME [-country NAME] [-arrival DATE] [-departure DATE]", destinationAdd},
	"destination list":   {"[-trip ID]", destinationList},
	"destination search": {"-q KEYWORD", destinationSearch},
	"destination delete": {"-id ID", destinationDelete},
	"activity add":       {"-destination ID -name NAME [-description TEXT] [-date DATE] [-cost N]", activityAdd},
	"activity list":      {"[-destination ID]", activityList},
	"activity search":    {"[-q KEYWORD] [-min N] [-max N]", activitySearch},
	"activity delete":    {"-id ID", activityDelete},
	"category list":      {"", categoryList},
	"tag list":           {"", tagList},
	"export":             {"[-format csv|yaml] [-o FILE]", exportCmd},
	"seed":               {"", seedCmd},
}

// Run executes the command named by args and returns the process exit code.
// Each command is logged as one structured line with its status and duration.
func (a *App) Run(ctx context.Context, args []string) int {
	name, cmd, rest, ok := lookup(args)
	if !ok {
		a.usage()
		return ExitUsage
	}

	start := time.Now()
	err := cmd.run(ctx, a, rest)

	st := status(err)
	attrs := []any{
		"command", name,
		"status", st,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if st == "error" {
		a.log.ErrorContext(ctx, "command", append(attrs, "error", err)...)
	} else {
		a.log.InfoContext(ctx, "command", attrs...)
	}

	return a.report(name, err)
}

// lookup resolves the two-word form first, then the one-word form.
func lookup(args []string) (string, command, []string, bool) {
	if len(args) >= 2 {
		name := args[0] + " " + args[1]
		if cmd, ok := commands[name]; ok {
			return name, cmd, args[2:], true
		}
	}
	if len(args) >= 1 {
		if cmd, ok := commands[args[0]]; ok {
			return args[0], cmd, args[1:], true
		}
	}
	return "", command{}, nil, false
}

// report prints err in the form the user should see and picks the exit code.
func (a *App) report(name string, err error) int {
	var ue *userError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(a.errOut, "usage: journal %s %s\n", name, commands[name].usage)
		return ExitUsage
	case errors.Is(err, domain.ErrValidation):
		fmt.Fprintf(a.out, "⚠ %s\n", unwrapMessage(err))
		return ExitError
	case errors.As(err, &ue):
		fmt.Fprintln(a.out, ue.msg)
		return ExitError
	default:
		fmt.Fprintf(a.errOut, "error: %v\n", err)
		return ExitError
	}
}

func (a *App) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.errOut, "usage: journal <resource> <verb> [flags]")
	fmt.Fprintln(a.errOut)
	for _, name := range names {
		fmt.Fprintf(a.errOut, "  %s %s\n", name, commands[name].usage)
	}
}

// flags returns a FlagSet that reports parse errors to errOut instead of exiting.
func (a *App) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// parse parses args into fs. Any failure, including -h, is a usage error.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return nil
}

// keyword returns the -q value, or the positional arguments joined by spaces
// when -q is not given.
func keyword(q string, fs *flag.FlagSet) string {
	if q != "" {
		return strings.TrimSpace(q)
	}
	return strings.TrimSpace(strings.Join(fs.Args(), " "))
}
