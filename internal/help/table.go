// SPDX-License-Identifier: MPL-2.0

package help

import (
	"strings"

	"titanium-cli/internal/merge"
	"titanium-cli/internal/ui"
	"titanium-cli/pkg/cmdmeta"
)

type (
	// row is one printed line of a list. Secondary rows of a group print a
	// blank label of the primary's width.
	row struct {
		label   string
		desc    string
		primary bool
	}

	// list is a titled block of rows.
	list struct {
		heading string
		rows    []row
	}
)

func (l *list) add(label, desc string, primary bool) {
	if !primary {
		label = ui.Blank(label)
	}
	l.rows = append(l.rows, row{label: label, desc: desc, primary: primary})
}

// printList writes heading, the aligned rows and a trailing blank line. An
// empty list prints nothing.
func (r *Renderer) printList(l list) {
	if len(l.rows) == 0 {
		return
	}

	width := 0
	for _, rw := range l.rows {
		if rw.primary {
			width = max(width, ui.Width(rw.label))
		}
	}

	r.log.Log("%s", l.heading)
	for _, rw := range l.rows {
		r.log.Log("   %s   %s", r.theme.Cmd.Render(ui.Rpad(rw.label, width)), rw.desc)
	}
	r.log.Log()
}

// annotate appends the non-empty, already styled notes to desc.
func (r *Renderer) annotate(desc string, notes ...string) string {
	var kept []string
	for _, n := range notes {
		if n != "" {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return desc
	}
	note := strings.Join(kept, " ")
	if desc == "" {
		return note
	}
	return desc + "  " + note
}

// muted renders s in the annotation style; empty input stays empty.
func (r *Renderer) muted(s string) string {
	if s == "" {
		return ""
	}
	return r.theme.Muted.Render(s)
}

// printGroups writes the subcommand, argument, flag and option lists of g.
// Headings other than the subcommand list are prefixed with title.
func (r *Renderer) printGroups(g *merge.Groups, title string, skipSubcommands bool) {
	if g.Empty() {
		return
	}
	prefix := ""
	if title != "" {
		prefix = title + " "
	}

	if !skipSubcommands {
		subs := list{heading: "Subcommands:"}
		for _, grp := range g.Subcommands {
			for i, e := range grp.Entries {
				subs.add(grp.Name, e.Item.Description, i == 0)
			}
		}
		r.printList(subs)
	}

	args := list{heading: prefix + "Arguments:"}
	for _, grp := range g.Args {
		for i, e := range grp.Entries {
			args.add(argLabel(e.Item), r.annotate(e.Item.Description, r.muted(origin(e))), i == 0)
		}
	}
	r.printList(args)

	flags := list{heading: prefix + "Flags:"}
	for _, grp := range g.Flags {
		for i, e := range grp.Entries {
			f := e.Item
			def := ""
			if f.HasDefault() {
				def = "[default: " + f.DefaultString() + "]"
			}
			flags.add(flagLabel(grp.Name, f), r.annotate(f.Description, r.muted(def), r.muted(origin(e))), i == 0)
		}
	}
	r.printList(flags)

	options := list{heading: prefix + "Options:"}
	for _, grp := range g.Options {
		for i, e := range grp.Entries {
			o := e.Item
			options.add(optionLabel(grp.Name, o), r.annotate(o.Description, r.optionNotes(o, origin(e))...), i == 0)
		}
	}
	r.printList(options)
}

// optionNotes returns the default, allowed-values and origin annotations of
// an option. When colors reach the terminal and a value list is present, the
// default is shown by bolding it in the list instead of a separate annotation.
func (r *Renderer) optionNotes(o *cmdmeta.Option, from string) []string {
	colorize := r.log.Colorize() && r.theme.HasColor()

	var notes []string
	if o.HasDefault() && (!colorize || len(o.Values) == 0) {
		notes = append(notes, r.muted("[default: "+o.DefaultString()+"]"))
	}

	if len(o.Values) > 0 {
		def := o.DefaultString()
		highlight := r.theme.Bold.Inherit(r.theme.Muted)
		values := make([]string, len(o.Values))
		for i, v := range o.Values {
			if colorize && o.HasDefault() && v == def {
				values[i] = highlight.Render(v)
			} else {
				values[i] = r.muted(v)
			}
		}
		sep := r.muted(", ")
		notes = append(notes, r.muted("[")+strings.Join(values, sep)+r.muted("]"))
	}

	return append(notes, r.muted(from))
}
