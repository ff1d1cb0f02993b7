// Package styled holds the shared visual styling of the ember shell.
package styled

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewTableWriter returns a new table.Writer with the custom styles
// for the ember shell.
func NewTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	tw.Style().Color.Footer = text.Colors{text.FgCyan, text.Bold}

	return tw
}

// ErrorColor returns the *color.Color used to print failures.
func ErrorColor() *color.Color {
	return color.New(color.FgRed, color.Bold)
}

// DimmedColor returns a dimmed *color.Color to print secondary
// information.
func DimmedColor() *color.Color {
	return color.RGB(128, 128, 128)
}
