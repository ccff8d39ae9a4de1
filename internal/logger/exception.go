// SPDX-License-Identifier: MPL-2.0

package logger

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

type (
	// stackStringer is implemented by errors that carry a rendered stack.
	stackStringer interface {
		Stack() string
	}

	// stackTracer is implemented by errors created with github.com/pkg/errors.
	stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
)

// StackOf returns the stack text carried by err, if any. The text starts with
// the error message, as a Stack() method or "%+v" of a pkg/errors value does.
func StackOf(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var ss stackStringer
	if errors.As(err, &ss) {
		if stack := ss.Stack(); stack != "" {
			return stack, true
		}
	}

	if _, ok := err.(stackTracer); ok {
		return fmt.Sprintf("%+v", err), true
	}

	var st stackTracer
	if errors.As(err, &st) {
		return err.Error() + fmt.Sprintf("%+v", st.StackTrace()), true
	}

	return "", false
}

// ErrorText returns the stack text of err, or its message when it has none.
func ErrorText(err error) string {
	if stack, ok := StackOf(err); ok {
		return stack
	}
	return err.Error()
}

// Exception logs err at the error level, one line per stack line, followed
// by a blank line.
func (l *Logger) Exception(err error) *Logger {
	if err == nil {
		return l
	}

	if stack, ok := StackOf(err); ok {
		for _, line := range strings.Split(strings.TrimRight(stack, "\n"), "\n") {
			l.Error("%s", line)
		}
	} else {
		l.Error("%s", err.Error())
	}
	return l.Log()
}
