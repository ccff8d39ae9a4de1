// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Issue identifiers.
const (
	ConfigLoadFailedId Id = iota + 1
	InvalidLogLevelId
	CommandNotFoundId
	NoCommandsFoundId
	MetadataParseErrorId
	SearchPathUnreadableId
	PermissionDeniedId
)

// Glamour styles used by Render callers.
const (
	StyleDark  = "dark"
	StyleNoTTY = "notty"
)

type (
	// Id identifies an issue in the catalog.
	Id int

	// MarkdownMsg is the Markdown body of an issue.
	MarkdownMsg string

	// HttpLink is a documentation or reference URL.
	HttpLink string

	// Issue is a user-facing explanation of a known failure, with hints.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
		extLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue with the named glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- " + string(link) + "\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- " + string(link) + "\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Things you can try:
- Print the effective configuration:
~~~
$ titanium config show
~~~

- Write a fresh default file:
~~~
$ titanium config init
~~~

- Check that every key is known. The file is CUE:
~~~cue
cli: {
	colors:    true
	log_level: "warn"
	quiet:     false
	banner:    true
}
paths: {
	commands: ["/opt/titanium/commands"]
	sdks:     ["/opt/titanium/sdks"]
}
~~~`,
	}

	invalidLogLevelIssue = &Issue{
		id: InvalidLogLevelId,
		mdMsg: `
# Invalid log level!

The log level must be one of: trace, debug, info, warn, error.

## Things you can try:
- Pass a valid level on the command line:
~~~
$ titanium --log-level debug help
~~~

- Or set it in the environment:
~~~
$ TITANIUM_CLI_LOG_LEVEL=info titanium help
~~~`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

The command you asked for is not provided by any configured search path.

## Things you can try:
- List all available commands:
~~~
$ titanium help
~~~

- Check for typos in the command name
- Make sure the SDK that provides the command is in ` + "`paths.sdks`",
	}

	noCommandsFoundIssue = &Issue{
		id: NoCommandsFoundId,
		mdMsg: `
# No commands found!

No command metadata was discovered.

## Search locations:
1. ` + "`paths.commands`" + ` entries: ` + "`<name>.cue`" + ` or ` + "`<name>.toml`" + `
2. ` + "`paths.sdks`" + ` entries: ` + "`<sdk>/cli/commands/`" + ` and ` + "`<sdk>/<platform>/cli/commands/`" + `
3. The ` + "`commands`" + ` directory next to the configuration file

## Example command file (build.cue):
~~~cue
desc: "builds the project"
args: [{name: "target", required: true}]
flags: verbose: {abbr: "v", desc: "chatty output"}
options: output: {abbr: "o", hint: "dir", default: "dist"}
~~~`,
	}

	metadataParseErrorIssue = &Issue{
		id: MetadataParseErrorId,
		mdMsg: `
# Failed to parse command metadata!

A command file contains invalid CUE or TOML, or fields the schema does not allow.

## Common issues:
- Unknown field names (the schema is closed)
- ` + "`abbr`" + ` longer than one character
- Arguments without a ` + "`name`" + `

## Things you can try:
- Run with trace logging to see every skipped provider:
~~~
$ titanium --log-level trace help
~~~`,
	}

	searchPathUnreadableIssue = &Issue{
		id: SearchPathUnreadableId,
		mdMsg: `
# Search path not readable!

A configured commands or SDK directory exists but could not be listed.

## Things you can try:
- Check the directory permissions
- Remove the entry from ` + "`paths.commands`" + ` or ` + "`paths.sdks`",
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

You don't have permission to perform this operation.

## Things you can try:
- Check file and directory permissions of the configuration directory
- Point ` + "`--config`" + ` at a file you own`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		invalidLogLevelIssue.Id():      invalidLogLevelIssue,
		commandNotFoundIssue.Id():      commandNotFoundIssue,
		noCommandsFoundIssue.Id():      noCommandsFoundIssue,
		metadataParseErrorIssue.Id():   metadataParseErrorIssue,
		searchPathUnreadableIssue.Id(): searchPathUnreadableIssue,
		permissionDeniedIssue.Id():     permissionDeniedIssue,
	}
)

// Values returns every issue ordered by id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the issue with the given id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
