package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/metaphox/quest-lang/diag"
)

var (
	colorHeading = lipgloss.Color("#8B5CF6")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorSuccess = lipgloss.Color("#10B981")
)

type styles struct {
	heading   lipgloss.Style
	errTitle  lipgloss.Style
	err       lipgloss.Style
	warnTitle lipgloss.Style
	warn      lipgloss.Style
	ok        lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{heading: plain, errTitle: plain, err: plain, warnTitle: plain, warn: plain, ok: plain}
	}
	return styles{
		heading:   lipgloss.NewStyle().Bold(true).Foreground(colorHeading),
		errTitle:  lipgloss.NewStyle().Bold(true).Foreground(colorError),
		err:       lipgloss.NewStyle().Foreground(colorError),
		warnTitle: lipgloss.NewStyle().Bold(true).Foreground(colorWarning),
		warn:      lipgloss.NewStyle().Foreground(colorWarning),
		ok:        lipgloss.NewStyle().Foreground(colorSuccess),
	}
}

func (st styles) section(w io.Writer, title string) {
	fmt.Fprintln(w, st.heading.Render("--- "+title+" ---"))
}

// writeDiagnostics prints the same text as diag.Sink.Report, styled.
func (st styles) writeDiagnostics(w io.Writer, sink *diag.Sink) {
	if sink.HasErrors() {
		fmt.Fprintln(w, st.errTitle.Render("Errors found:"))
		for _, d := range sink.Errors() {
			fmt.Fprintln(w, st.err.Render(d.String()))
		}
	} else {
		fmt.Fprintln(w, st.ok.Render("No errors found."))
	}
	if len(sink.Warnings()) > 0 {
		fmt.Fprintln(w, st.warnTitle.Render("Warnings:"))
		for _, d := range sink.Warnings() {
			fmt.Fprintln(w, st.warn.Render(d.String()))
		}
	}
}
