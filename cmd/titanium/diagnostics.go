// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"titanium-cli/internal/config"
	"titanium-cli/internal/discovery"
	"titanium-cli/internal/issue"
	"titanium-cli/internal/logger"
)

// renderDiagnostics logs discovery diagnostics: errors as warnings, warnings
// at debug level.
func renderDiagnostics(log *logger.Logger, diags []discovery.Diagnostic) {
	for _, d := range diags {
		msg := d.Message
		if d.Path != "" {
			msg = d.Path + ": " + msg
		}
		switch d.Severity {
		case discovery.SeverityError:
			log.Warn("%s", msg)
		default:
			log.Debug("%s", msg)
		}
	}
}

// applyLogLevel sets the minimum level from --log-level or the config.
func (a *App) applyLogLevel(log *logger.Logger, cfg *config.Config) error {
	name := string(cfg.CLI.LogLevel)
	if a.flags.logLevel != "" {
		name = a.flags.logLevel
	}

	err := log.SetMinLevel(name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, logger.ErrLevelNotFound) && !errors.Is(err, logger.ErrInvalidLevel) {
		return err
	}
	return issue.NewErrorContext().
		WithOperation("set log level").
		WithResource(name).
		WithSuggestion("Use one of: trace, debug, info, warn, error").
		WithIssue(issue.InvalidLogLevelId).
		Wrap(err).
		BuildError()
}

// renderIssues prints the catalog entries linked from err.
func renderIssues(log *logger.Logger, err error) {
	i := issue.IssueOf(err)
	if i == nil {
		return
	}
	style := issue.StyleNoTTY
	if log.Colorize() && log.Theme().HasColor() {
		style = issue.StyleDark
	}
	rendered, rerr := i.Render(style)
	if rerr != nil {
		log.Debug("cannot render issue %d: %s", int(i.Id()), rerr.Error())
		return
	}
	log.Log("%s", rendered)
}
