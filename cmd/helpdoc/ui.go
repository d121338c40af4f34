package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

var (
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// printAction writes a progress message, styled when color is enabled.
func printAction(w io.Writer, msg string) {
	if viper.GetBool("color") {
		msg = actionStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
}

// printError writes an error message, styled when color is enabled.
func printError(w io.Writer, msg string) {
	if viper.GetBool("color") {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
}
