package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pgold/venn/internal/config"
)

func newTestApp() *App {
	return NewApp(config.Default())
}

func typeText(t *testing.T, a *App, text string) *App {
	t.Helper()
	for _, r := range text {
		model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		a, ok = model.(*App)
		if !ok {
			t.Fatalf("Update returned unexpected model type %T", model)
		}
	}
	return a
}

func press(t *testing.T, a *App, key tea.KeyType) *App {
	t.Helper()
	model, _ := a.Update(tea.KeyMsg{Type: key})
	app, ok := model.(*App)
	if !ok {
		t.Fatalf("Update returned unexpected model type %T", model)
	}
	return app
}

func TestNewAppStartsWithConfiguredFields(t *testing.T) {
	cfg := config.Default()
	cfg.InitialFields = 3
	app := NewApp(cfg)
	if len(app.fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(app.fields))
	}
	if app.focus != 1 {
		t.Fatalf("expected focus on first values input, got slot %d", app.focus)
	}
	// Empty fields are valid empty sequences, so all pairs already exist
	// (they just render as None everywhere).
	if len(app.results) != 3 {
		t.Fatalf("expected 3 pair results for 3 empty fields, got %d", len(app.results))
	}
}

func TestEndToEndComparison(t *testing.T) {
	app := newTestApp()
	app = typeText(t, app, "[1,2,3]")
	app = press(t, app, tea.KeyTab) // second field's name input
	app = press(t, app, tea.KeyTab) // second field's values input
	app = typeText(t, app, "2,3,4")

	if len(app.results) != 1 {
		t.Fatalf("expected 1 pair result, got %d", len(app.results))
	}
	r := app.results[0]
	if r.LeftName != "Array 1" || r.RightName != "Array 2" {
		t.Fatalf("default names wrong: %s vs %s", r.LeftName, r.RightName)
	}
	if len(r.OnlyInLeft) != 1 || r.OnlyInLeft[0].Num != 1 {
		t.Fatalf("onlyInLeft = %v, want [1]", r.OnlyInLeft)
	}
	if len(r.OnlyInRight) != 1 || r.OnlyInRight[0].Num != 4 {
		t.Fatalf("onlyInRight = %v, want [4]", r.OnlyInRight)
	}
	if len(r.Intersection) != 2 {
		t.Fatalf("intersection = %v, want [2 3]", r.Intersection)
	}
}

func TestCustomNameLabelsResults(t *testing.T) {
	app := newTestApp()
	app = press(t, app, tea.KeyShiftTab) // back to first field's name input
	app = typeText(t, app, "X")
	app = press(t, app, tea.KeyTab) // first values
	app = typeText(t, app, "1,2")
	app = press(t, app, tea.KeyTab) // second name
	app = press(t, app, tea.KeyTab) // second values
	app = typeText(t, app, "2,3")

	if len(app.results) != 1 {
		t.Fatalf("expected 1 pair result, got %d", len(app.results))
	}
	if app.results[0].LeftName != "X" || app.results[0].RightName != "Array 2" {
		t.Fatalf("names = %s vs %s, want X vs Array 2",
			app.results[0].LeftName, app.results[0].RightName)
	}
}

func TestInvalidFieldWithholdsComparison(t *testing.T) {
	app := newTestApp()
	app = typeText(t, app, `{"a":1}`) // valid JSON, not an array
	app = press(t, app, tea.KeyTab)
	app = press(t, app, tea.KeyTab)
	app = typeText(t, app, "1,2")

	if !app.anyInvalid() {
		t.Fatalf("expected first field to be invalid")
	}
	if len(app.results) != 0 {
		t.Fatalf("invalid field must withhold all results, got %v", app.results)
	}
	view := app.View()
	if !strings.Contains(view, "Input must be a valid JSON array") {
		t.Fatalf("view must surface the parse error:\n%s", view)
	}
	if !strings.Contains(view, "Fix the highlighted fields") {
		t.Fatalf("view must withhold results while invalid:\n%s", view)
	}
}

func TestEditRevalidatesField(t *testing.T) {
	app := newTestApp()
	app = typeText(t, app, `{`)
	// `{` alone falls back to comma parsing and is a string token, so the
	// field is still valid.
	if app.anyInvalid() {
		t.Fatalf("comma-fallback input must not be invalid")
	}
	app = typeText(t, app, `}`) // now `{}`: valid JSON, not an array
	if !app.anyInvalid() {
		t.Fatalf("expected {} to be rejected as non-array JSON")
	}
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	app = model.(*App)
	if app.anyInvalid() {
		t.Fatalf("deleting the offending character must clear the error")
	}
}

func TestAddAndRemoveFields(t *testing.T) {
	app := newTestApp()
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	app = model.(*App)
	if len(app.fields) != 3 {
		t.Fatalf("ctrl+a should add a field, got %d", len(app.fields))
	}
	if app.focus != 5 {
		t.Fatalf("focus should land on the new field's values input, got slot %d", app.focus)
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	app = model.(*App)
	if len(app.fields) != 2 {
		t.Fatalf("ctrl+d should remove the focused field, got %d", len(app.fields))
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	app = model.(*App)
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	app = model.(*App)
	if len(app.fields) != 1 {
		t.Fatalf("expected removals to stop at 1 field, got %d", len(app.fields))
	}
}

func TestThreeFieldsProduceThreePairsInOrder(t *testing.T) {
	app := newTestApp()
	app = typeText(t, app, "1,2")
	app = press(t, app, tea.KeyTab)
	app = press(t, app, tea.KeyTab)
	app = typeText(t, app, "2,3")
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	app = model.(*App)
	app = typeText(t, app, "3,4")

	if len(app.results) != 3 {
		t.Fatalf("expected 3 pairs for 3 fields, got %d", len(app.results))
	}
	wantPairs := [][2]string{
		{"Array 1", "Array 2"},
		{"Array 1", "Array 3"},
		{"Array 2", "Array 3"},
	}
	for i, want := range wantPairs {
		if app.results[i].LeftName != want[0] || app.results[i].RightName != want[1] {
			t.Fatalf("pair %d = (%s,%s), want (%s,%s)", i,
				app.results[i].LeftName, app.results[i].RightName, want[0], want[1])
		}
	}
}

func TestQuitKeys(t *testing.T) {
	app := newTestApp()
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c must quit")
	}
	if msg := cmd(); msg == nil {
		t.Fatalf("quit command must produce a message")
	}
}
