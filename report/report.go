// Package report renders the textual comparison between a Monte Carlo
// estimate and the analytical answer. It consumes the coingame core and
// owns no simulation state.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bjmcder/digital-dice/coingame"
)

var green = lipgloss.Color("#98971a")
var yellow = lipgloss.Color("#d79921")
var blue = lipgloss.Color("#458588")

var titleStyle = lipgloss.NewStyle().
	Foreground(blue).
	Bold(true)

var labelStyle = lipgloss.NewStyle().
	Width(22)

var valueStyle = lipgloss.NewStyle().
	Foreground(green)

var noteStyle = lipgloss.NewStyle().
	Foreground(yellow).
	Italic(true)

// Comparison renders the estimate next to the closed form, with the
// relative error when both are numeric. The Unavailable case is reported in
// words, never as a number.
func Comparison(tokens coingame.Tokens, bias float64, est coingame.Estimate, cf coingame.ClosedForm) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("*** A Curious Coin-Flipping Game ***"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s%s\n",
		labelStyle.Render("Initial tokens:"),
		valueStyle.Render(fmt.Sprintf("(%d, %d, %d), bias %g", tokens.L, tokens.M, tokens.N, bias)))
	fmt.Fprintf(&b, "%s%s\n",
		labelStyle.Render("Monte Carlo estimate:"),
		valueStyle.Render(fmt.Sprintf("%.4f rounds (%d trials)", est.MeanRounds, est.Trials)))

	if !cf.Available {
		b.WriteString(noteStyle.Render("No closed form is known for bias ≠ 0.5."))
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%s%s\n",
		labelStyle.Render("Analytical solution:"),
		valueStyle.Render(fmt.Sprintf("%.4f rounds", cf.Mean)))
	fmt.Fprintf(&b, "%s%s\n",
		labelStyle.Render("Relative error:"),
		valueStyle.Render(fmt.Sprintf("%.3f%%", 100*math.Abs(est.MeanRounds-cf.Mean)/cf.Mean)))
	return b.String()
}
