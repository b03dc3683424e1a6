// internal/tui/results_view.go
//
// Rendering for the editor: the field column on top, the comparison results
// below it. Results only appear when every field parses.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pgold/venn/internal/report"
)

func (a *App) View() string {
	var sections []string
	sections = append(sections, a.styles.header.Render("⬡ VENN"))
	sections = append(sections, a.renderFields())
	sections = append(sections, a.renderResults())
	sections = append(sections, a.styles.faint.Render(
		"tab: next field · ctrl+a: add · ctrl+d: remove · ctrl+c: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderFields() string {
	blocks := make([]string, 0, len(a.fields))
	for i, f := range a.fields {
		label := a.styles.label.Render(a.fieldName(i))
		lines := []string{label, f.name.View(), f.values.View()}
		if f.parseErr != nil {
			lines = append(lines, a.styles.errMsg.Render("✗ "+f.parseErr.Error()))
		}
		blocks = append(blocks, a.styles.box.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (a *App) renderResults() string {
	if a.anyInvalid() {
		return a.styles.errMsg.Render("Fix the highlighted fields to compare.")
	}
	if len(a.results) == 0 {
		return a.styles.faint.Render(report.NeedMoreInputs)
	}
	blocks := make([]string, 0, len(a.results))
	for _, r := range a.results {
		head := a.styles.accent.Render(fmt.Sprintf("%s vs %s", r.LeftName, r.RightName))
		body := strings.Join([]string{
			fmt.Sprintf("Only in %s: %s", r.LeftName, report.Values(r.OnlyInLeft)),
			fmt.Sprintf("Only in %s: %s", r.RightName, report.Values(r.OnlyInRight)),
			fmt.Sprintf("In both: %s", report.Values(r.Intersection)),
		}, "\n")
		blocks = append(blocks, a.styles.box.Render(head+"\n"+body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
