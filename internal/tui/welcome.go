package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/footprint/internal/greenops"
)

const (
	quantityCharLimit  = 10
	quantityInputWidth = 12
	labelColumnWidth   = 26
)

// welcomeForm holds one numeric input per activity type, in table order.
type welcomeForm struct {
	types  []greenops.ActivityType
	inputs []textinput.Model
	focus  int
}

func newWelcomeForm() *welcomeForm {
	types := greenops.AllActivityTypes()
	f := &welcomeForm{
		types:  types,
		inputs: make([]textinput.Model, len(types)),
	}
	for i := range types {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = quantityCharLimit
		ti.Width = quantityInputWidth
		ti.Prompt = ""
		ti.TextStyle = ValueStyle
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

func (f *welcomeForm) focusFirst() tea.Cmd {
	return f.setFocus(0)
}

func (f *welcomeForm) onLast() bool {
	return f.focus == len(f.inputs)-1
}

func (f *welcomeForm) move(delta int) tea.Cmd {
	n := len(f.inputs)
	return f.setFocus(((f.focus+delta)%n + n) % n)
}

func (f *welcomeForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[i].Focus()
}

func (f *welcomeForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// values reads every input. Anything that is not a finite number reads
// as 0.
func (f *welcomeForm) values() map[greenops.ActivityType]float64 {
	out := make(map[greenops.ActivityType]float64, len(f.types))
	for i, t := range f.types {
		out[t] = parseQuantity(f.inputs[i].Value())
	}
	return out
}

// parseQuantity converts form text to a number, reading invalid input as 0.
func parseQuantity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (f *welcomeForm) view(validation string) string {
	var b strings.Builder

	b.WriteString("\n" + HeaderStyle.Render("Carbon Footprint Calculator") + "\n")
	b.WriteString(SubtleStyle.Render("Enter today's activities. Leave a field empty to skip it.") + "\n\n")

	for i, t := range f.types {
		label := fmt.Sprintf("%-*s", labelColumnWidth, fmt.Sprintf("%s (%s)", t.Label(), t.Unit()))
		marker := "  "
		if i == f.focus {
			label = FocusedStyle.Render(label)
			marker = FocusedStyle.Render("> ")
		} else {
			label = LabelStyle.Render(label)
		}
		b.WriteString(marker + label + " " + f.inputs[i].View() + "\n")
	}

	if validation != "" {
		b.WriteString("\n" + WarningStyle.Render(validation) + "\n")
	}

	b.WriteString("\n" + SubtleStyle.Render("tab/↓ next • shift+tab/↑ previous • enter on last field to continue • esc quit") + "\n")
	return b.String()
}
