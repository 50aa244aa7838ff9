package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/misterclayt0n/keima/internal/router"
)

const tagline = "Nossa inteligência, seu progresso"

var (
	boldGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	boldYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	magenta    = color.New(color.FgMagenta).SprintFunc()
	yellow     = color.New(color.FgYellow).SprintFunc()
	red        = color.New(color.FgRed).SprintFunc()
	blue       = color.New(color.FgBlue).SprintFunc()
	faint      = color.New(color.Faint).SprintFunc()
)

func printBanner(w io.Writer) {
	banner := figure.NewFigure("Keima", "cybermedium", true)
	fmt.Fprint(w, boldCyan(banner.String()))
	fmt.Fprintln(w, faint(tagline))
	fmt.Fprintln(w)
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(w io.Writer, title string) {
	width := 40
	border := strings.Repeat("═", width)
	fmt.Fprintln(w, boldCyan("╔"+border+"╗"))
	fmt.Fprintln(w, boldCyan("║"+centerText(title, width)+"║"))
	fmt.Fprintln(w, boldCyan("╚"+border+"╝"))
}

func centerText(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(w io.Writer, label string, value interface{}) {
	fmt.Fprintf(w, "  %s: %v\n", boldYellow(label), value)
}

var navLabels = map[router.Page]string{
	router.PageHome:     "Início",
	router.PageWorkout:  "Treino",
	router.PageCatalog:  "Exercícios",
	router.PageWeight:   "Peso",
	router.PageDiet:     "Dieta",
	router.PageProgress: "Progresso",
}

// printNav prints the bottom navigation with the current page highlighted.
// It is hidden on onboarding.
func (a *app) printNav(w io.Writer) {
	state := a.session.State()
	if !a.router.ShowNav(state) {
		return
	}
	current := a.router.Screen(state)

	var items []string
	for _, p := range router.Pages {
		label, ok := navLabels[p]
		if !ok {
			continue
		}
		if p == current {
			items = append(items, boldGreen("["+label+"]"))
		} else {
			items = append(items, faint(label))
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("─", 50))
	fmt.Fprintln(w, strings.Join(items, "  "))
	fmt.Fprintln(w, faint("keima open <"+pageList()+">"))
}

func pageList() string {
	var names []string
	for _, p := range router.Pages {
		names = append(names, string(p))
	}
	return strings.Join(names, "|")
}
