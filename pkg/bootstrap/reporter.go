package bootstrap

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrinterReporter prints one line per step with pterm prefix printers
type PrinterReporter struct {
	success pterm.PrefixPrinter
	info    pterm.PrefixPrinter
	warning pterm.PrefixPrinter
	errorP  pterm.PrefixPrinter
}

// NewPrinterReporter writes to w; color is disabled when noColor is set
func NewPrinterReporter(w io.Writer, noColor bool) *PrinterReporter {
	if noColor {
		pterm.DisableColor()
	}
	return &PrinterReporter{
		success: *pterm.Success.WithWriter(w),
		info:    *pterm.Info.WithWriter(w),
		warning: *pterm.Warning.WithWriter(w),
		errorP:  *pterm.Error.WithWriter(w),
	}
}

// Report implements Reporter
func (r *PrinterReporter) Report(step Step, res Result) {
	label := step.Name
	if step.Description != "" {
		label = fmt.Sprintf("%s (%s)", step.Name, step.Description)
	}
	switch res.Outcome {
	case Satisfied:
		r.success.Println(label)
	case Installed:
		r.success.Println(label + ": installed")
	case Planned:
		r.info.Println(label + ": would install")
	case Failed:
		if res.Fatal {
			r.errorP.Println(label + ": " + res.Error)
			return
		}
		r.warning.Println(label + ": " + res.Error)
	}
}

// Summary prints the final counts
func (r *PrinterReporter) Summary(report Report) {
	msg := fmt.Sprintf("%d ok, %d installed, %d failed",
		report.Count(Satisfied), report.Count(Installed), report.Count(Failed))
	if report.DryRun {
		msg = fmt.Sprintf("dry run: %d ok, %d would install", report.Count(Satisfied), report.Count(Planned))
	}
	if report.Count(Failed) > 0 {
		r.warning.Println(msg)
		return
	}
	r.info.Println(msg)
}
