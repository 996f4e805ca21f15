package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Process exit codes. Anything that is not an *ExitError exits with
// ExitFailure.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the solver ran but could not finish: no candidates left, games unsolved
	ExitCommandError = 2 // the command itself was wrong: flags, config, word list, unknown run
)

// ExitError carries the exit code main should use for err.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError returns an ExitError without an underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError prefixes err with message and attaches code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps err to a process exit code.
func GetExitCode(err error) int {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitFailure
}

// Printer writes command results to stdout in the selected --format.
// Diagnostics go to the diagnostic writer so JSON on stdout stays parseable.
type Printer struct {
	Format  string
	Out     io.Writer
	Diag    io.Writer // nil falls back to Out
	Verbose bool
}

// envelope wraps every JSON result: {"status":"ok","data":...} or
// {"status":"error","error":{...}}.
type envelope struct {
	Status string   `json:"status"`
	Data   any      `json:"data,omitempty"`
	Error  *failure `json:"error,omitempty"`
}

type failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// JSON reports whether --format json was selected.
func (p *Printer) JSON() bool { return p.Format == "json" }

// Result prints data as a JSON envelope, or text verbatim in text mode.
func (p *Printer) Result(data any, text string) error {
	if p.JSON() {
		return p.encode(envelope{Status: "ok", Data: data})
	}
	_, err := io.WriteString(p.Out, text)
	return err
}

// Fail reports a failed command. In text mode only the message is shown,
// plus details when verbose.
func (p *Printer) Fail(code, message string, details any) error {
	if p.JSON() {
		return p.encode(envelope{Status: "error", Error: &failure{Code: code, Message: message, Details: details}})
	}
	w := p.diag()
	fmt.Fprintf(w, "%s: %s\n", code, message)
	if p.Verbose && details != nil {
		fmt.Fprintf(w, "  %v\n", details)
	}
	return nil
}

// Debugf prints a diagnostic line when --verbose is set.
func (p *Printer) Debugf(format string, args ...any) {
	if p.Verbose {
		fmt.Fprintf(p.diag(), format+"\n", args...)
	}
}

func (p *Printer) encode(v envelope) error {
	return json.NewEncoder(p.Out).Encode(v)
}

func (p *Printer) diag() io.Writer {
	if p.Diag != nil {
		return p.Diag
	}
	return p.Out
}
