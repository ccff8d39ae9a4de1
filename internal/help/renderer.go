// SPDX-License-Identifier: MPL-2.0

package help

import (
	"errors"
	"fmt"
	"strings"

	"titanium-cli/internal/logger"
	"titanium-cli/internal/merge"
	"titanium-cli/internal/registry"
	"titanium-cli/internal/ui"

	"github.com/sahilm/fuzzy"
)

// DefaultProgram is the program name used in usage lines.
const DefaultProgram = "titanium"

// ErrUnknownCommand is returned when help is requested for a command that is
// not in the table. The general listing has already been printed.
var ErrUnknownCommand = errors.New("unrecognized command")

type (
	// Renderer prints help screens for the commands of a registry.Table.
	Renderer struct {
		log     *logger.Logger
		table   *registry.Table
		loader  registry.Loader
		theme   *ui.Theme
		program string
		suggest bool
	}

	// Option configures a Renderer.
	Option func(*Renderer)

	// Invocation is the pre-parsed help request.
	Invocation struct {
		// Positionals are the non-flag arguments, possibly starting with
		// one or more "help" tokens.
		Positionals []string
		// Exception is an error carried into help to be printed first.
		Exception error
	}

	// UnknownCommandError reports a help request for a missing command.
	UnknownCommandError struct {
		Command    string
		Suggestion string
	}
)

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownCommand, e.Command)
}

// Unwrap returns ErrUnknownCommand for errors.Is() compatibility.
func (e *UnknownCommandError) Unwrap() error { return ErrUnknownCommand }

// WithProgram sets the program name shown in usage lines.
func WithProgram(name string) Option {
	return func(r *Renderer) { r.program = name }
}

// WithSuggestions enables or disables "did you mean" hints. Enabled by default.
func WithSuggestions(enabled bool) Option {
	return func(r *Renderer) { r.suggest = enabled }
}

// New returns a Renderer over table. Variants are loaded through loader.
func New(log *logger.Logger, table *registry.Table, loader registry.Loader, opts ...Option) *Renderer {
	r := &Renderer{
		log:     log,
		table:   table,
		loader:  loader,
		theme:   log.Theme(),
		program: DefaultProgram,
		suggest: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run is the entry point of the help command. Leading "help" tokens are
// skipped; the next positionals select the command and subcommand. A carried
// exception is printed before anything else.
func (r *Renderer) Run(inv Invocation) error {
	args := inv.Positionals
	for len(args) > 0 && args[0] == "help" {
		args = args[1:]
	}

	var command, sub string
	if len(args) > 0 {
		command = args[0]
	}
	if len(args) > 1 {
		sub = args[1]
	}

	if inv.Exception != nil {
		r.log.Exception(inv.Exception)
	}

	if command == "" || command == registry.GlobalScope {
		r.renderGeneral()
		return nil
	}
	return r.RenderCommandHelp(command, sub)
}

// RenderCommandHelp prints the usage of command, optionally narrowed to the
// subcommand sub. For unknown commands it prints a notice followed by the
// general listing and returns an *UnknownCommandError.
func (r *Renderer) RenderCommandHelp(command, sub string) error {
	cmd, err := r.table.Lookup(command)
	if err != nil || command == registry.GlobalScope {
		return r.renderUnknown(command)
	}

	res := r.collect(&cmd.Tree, sub)

	usage := r.program + " " + command
	if len(res.Usage) > 0 {
		usage += " " + strings.Join(res.Usage, " ")
	}
	r.log.Log("Usage: %s\n", r.theme.Cmd.Render(usage))

	if res.Description != "" {
		r.log.Log("%s\n", ui.Sentence(res.Description))
	}

	matched := res.SubcommandMeta != nil
	if matched {
		title := res.SubcommandMeta.Title
		if title == "" {
			title = ui.Capitalize(res.Subcommand)
		}
		r.printGroups(res.Local, title, false)
	}

	title := res.Title
	if title == "" {
		title = ui.Capitalize(command)
	}
	r.printGroups(&res.Groups, title, matched)

	r.renderGlobals(matched)
	return nil
}

// RenderCommandList prints the visible commands and their descriptions.
func (r *Renderer) RenderCommandList() {
	commands := list{heading: "Commands:"}
	for _, name := range r.table.Names() {
		cmd, _ := r.table.Get(name)
		if cmd.Hidden(r.loader) {
			continue
		}
		commands.add(name, cmd.Description(r.loader), true)
	}
	r.printList(commands)
}

// RenderGlobalOptions prints the flags and options of the global
// pseudo-command under the "Global" heading.
func (r *Renderer) RenderGlobalOptions() {
	r.renderGlobals(false)
}

func (r *Renderer) renderGlobals(skipSubcommands bool) {
	global, ok := r.table.Global()
	if !ok {
		return
	}
	res := r.collect(&global.Tree, "")
	r.printGroups(&res.Groups, "Global", skipSubcommands)
}

func (r *Renderer) renderGeneral() {
	r.log.Log("Usage: %s\n", r.theme.Cmd.Render(r.program+" <command> [options]"))
	r.RenderCommandList()
	r.RenderGlobalOptions()
}

func (r *Renderer) renderUnknown(command string) error {
	r.log.Log("%s\n", r.theme.Error.Render(fmt.Sprintf("[ERROR] Unrecognized command %q", command)))

	suggestion := r.suggestion(command)
	if suggestion != "" {
		r.log.Log("Did you mean %s?\n", r.theme.Cmd.Render(suggestion))
	}

	r.renderGeneral()
	return &UnknownCommandError{Command: command, Suggestion: suggestion}
}

// suggestion returns the best fuzzy match of command among visible commands.
func (r *Renderer) suggestion(command string) string {
	if !r.suggest || command == "" {
		return ""
	}

	var candidates []string
	for _, name := range r.table.Names() {
		if cmd, _ := r.table.Get(name); !cmd.Hidden(r.loader) {
			candidates = append(candidates, name)
		}
	}

	matches := fuzzy.Find(command, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// collect merges tree and traces the variants that failed to load.
func (r *Renderer) collect(tree *registry.Tree, sub string) *merge.Result {
	res := merge.Collect(tree, sub, r.loader)
	for _, err := range res.Failures {
		r.log.Trace("skipping command provider: %s", err.Error())
	}
	return res
}
