package driver

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"codeinject/pkg/errors"
	"codeinject/pkg/lexer"
	"codeinject/pkg/source"
)

// RunOptions controls how results are displayed.
type RunOptions struct {
	ShowNames bool // List each code with its character name instead of printing text
}

// Report describes one injection.
type Report struct {
	Script   *source.ScriptName
	Result   lexer.Result
	Text     string                 // text inserted at the insertion point
	Warnings []errors.InjectorError // problems that did not prevent insertion
}

// Injector inserts the characters named by a script's file name into a
// host document.
type Injector struct {
	opts   lexer.Options
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

// NewInjector creates an Injector that scans with opts. A nil logger
// discards log output.
func NewInjector(opts lexer.Options, logger *slog.Logger) *Injector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Injector{opts: opts, logger: logger, out: os.Stdout, errOut: os.Stderr}
}

// SetOutput redirects DisplayResult output.
func (inj *Injector) SetOutput(out, errOut io.Writer) {
	inj.out = out
	inj.errOut = errOut
}

// Run checks the host state, scans the active script name and inserts one
// character per code at the insertion point, in the order the codes were
// found. Errors are returned rather than displayed.
func (inj *Injector) Run(host Host) (Report, []errors.InjectorError) {
	if !host.HasDocument() {
		return Report{}, []errors.InjectorError{errors.NewDocumentError()}
	}

	selection := host.Selection()
	if len(selection) != 1 {
		return Report{}, []errors.InjectorError{errors.NewSelectionError()}
	}
	ip, ok := selection[0].(InsertionPoint)
	if !ok {
		return Report{}, []errors.InjectorError{errors.NewSelectionError()}
	}

	script, err := host.ActiveScriptName()
	if err != nil || script == nil {
		inj.logger.Debug("no active script file, using sample name",
			slog.String("name", source.DebugSampleName), slog.Any("error", err))
		script = source.NewDebugSource()
	}

	report := Report{Script: script, Result: lexer.ScanWith(script.Name, inj.opts)}
	res := report.Result

	var codeErr errors.InjectorError
	if res.Invalid != nil {
		pos := errors.Position{StartPos: res.Invalid.Start, EndPos: res.Invalid.End, Source: script}
		codeErr = errors.NewCodeError(pos, res.Invalid.Literal(script.Name))
		inj.logger.Debug("invalid code", slog.String("token", res.Invalid.Literal(script.Name)),
			slog.String("stop", res.Stop.String()))
	}

	if !res.Found() {
		errs := []errors.InjectorError{errors.NewConfigurationError(errors.Position{Source: script})}
		if codeErr != nil {
			errs = append(errs, codeErr)
		}
		return report, errs
	}
	if codeErr != nil {
		report.Warnings = append(report.Warnings, codeErr)
	}

	for _, tok := range res.Tokens {
		char := string(lexer.CharFromCode(tok.Value))
		if err := ip.InsertText(char); err != nil {
			return report, []errors.InjectorError{errors.NewSelectionError().CausedBy(err)}
		}
		report.Text += char
		inj.logger.Debug("inserted character",
			slog.String("notation", tok.Notation.String()),
			slog.String("token", tok.Literal(script.Name)),
			slog.Int("code", tok.Value))
	}
	return report, nil
}

// DisplayResult prints the inserted text, or each code with its character
// name, followed by any warnings. Errors go to the error output instead.
// Returns true if the injection completed without errors, false otherwise.
func (inj *Injector) DisplayResult(report Report, errs []errors.InjectorError, options RunOptions) bool {
	if len(errs) > 0 {
		errors.DisplayErrors(inj.errOut, errs)
		return false
	}

	if options.ShowNames {
		for _, tok := range report.Result.Tokens {
			fmt.Fprintf(inj.out, "%s\t%s\n", tok.Literal(report.Script.Name), Describe(tok.Value))
		}
	} else {
		fmt.Fprintln(inj.out, report.Text)
	}
	errors.DisplayErrors(inj.errOut, report.Warnings)
	return true
}
