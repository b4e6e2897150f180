package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/footprint/internal/refdata"
	"github.com/rshade/footprint/internal/store"
)

const (
	profileEmail = iota
	profileCity
	profileCountry
	numProfileFields
)

const (
	profileCharLimit  = 120
	profileInputWidth = 40
)

// profileForm collects email, city and country. While the city field is
// focused it offers up to refdata.MaxSuggestions completions.
type profileForm struct {
	inputs []textinput.Model
	focus  int

	suggestions []string
	selected    int

	// dismissed is the city text for which suggestions were closed with esc.
	dismissed string
}

func newProfileForm() *profileForm {
	f := &profileForm{inputs: make([]textinput.Model, numProfileFields)}

	placeholders := [numProfileFields]string{"you@example.com", "e.g. Paris", "filled from city when known"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = profileCharLimit
		ti.Width = profileInputWidth
		ti.TextStyle = ValueStyle
		f.inputs[i] = ti
	}
	return f
}

func (f *profileForm) fill(p store.Profile) {
	f.inputs[profileEmail].SetValue(p.Email)
	f.inputs[profileCity].SetValue(p.City)
	f.inputs[profileCountry].SetValue(p.Country)
}

func (f *profileForm) value() store.Profile {
	return store.Profile{
		Email:   f.inputs[profileEmail].Value(),
		City:    f.inputs[profileCity].Value(),
		Country: f.inputs[profileCountry].Value(),
	}
}

func (f *profileForm) focusFirst() tea.Cmd {
	return f.setFocus(profileEmail)
}

func (f *profileForm) onLast() bool {
	return f.focus == numProfileFields-1
}

func (f *profileForm) move(delta int) tea.Cmd {
	return f.setFocus(((f.focus+delta)%numProfileFields + numProfileFields) % numProfileFields)
}

func (f *profileForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.refreshSuggestions()
	return f.inputs[i].Focus()
}

func (f *profileForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if f.focus == profileCity {
		f.refreshSuggestions()
	}
	return cmd
}

func (f *profileForm) refreshSuggestions() {
	city := f.inputs[profileCity].Value()
	if f.focus != profileCity || city == f.dismissed {
		f.suggestions = nil
		f.selected = 0
		return
	}
	f.dismissed = ""

	next := refdata.Suggest(city)
	// A city already spelled out in full needs no completion.
	if len(next) == 1 && strings.EqualFold(next[0], strings.TrimSpace(city)) {
		next = nil
	}
	f.suggestions = next
	if f.selected >= len(next) {
		f.selected = 0
	}
}

func (f *profileForm) hasSuggestions() bool {
	return f.focus == profileCity && len(f.suggestions) > 0
}

func (f *profileForm) dismissSuggestions() {
	f.dismissed = f.inputs[profileCity].Value()
	f.suggestions = nil
	f.selected = 0
}

func (f *profileForm) moveSuggestion(delta int) {
	n := len(f.suggestions)
	if n == 0 {
		return
	}
	f.selected = ((f.selected+delta)%n + n) % n
}

// acceptSuggestion copies the highlighted city into the city field, fills
// the country from the reference table and moves on to the country field.
func (f *profileForm) acceptSuggestion() tea.Cmd {
	if !f.hasSuggestions() {
		return nil
	}
	city := f.suggestions[f.selected]
	f.inputs[profileCity].SetValue(city)
	if country := refdata.LookupCity(city).Country; country != "" {
		f.inputs[profileCountry].SetValue(country)
	}
	f.dismissed = city
	return f.setFocus(profileCountry)
}

func (f *profileForm) view(validation string) string {
	var b strings.Builder

	b.WriteString("\n" + HeaderStyle.Render("Your Report is Ready!") + "\n")
	b.WriteString(SubtleStyle.Render("Tell us where you live to compare against local averages.") + "\n\n")

	labels := [numProfileFields]string{"Email", "City", "Country"}
	for i, ti := range f.inputs {
		label := labels[i]
		if i == profileEmail {
			label += " *"
		}
		if i == f.focus {
			b.WriteString(FocusedStyle.Render(label) + "\n")
		} else {
			b.WriteString(LabelStyle.Render(label) + "\n")
		}
		b.WriteString(ti.View() + "\n")

		if i == profileCity && f.hasSuggestions() {
			for j, s := range f.suggestions {
				if j == f.selected {
					b.WriteString("  " + FocusedStyle.Render("› "+s) + "\n")
				} else {
					b.WriteString("    " + SubtleStyle.Render(s) + "\n")
				}
			}
		}
		b.WriteString("\n")
	}

	if validation != "" {
		b.WriteString(WarningStyle.Render(validation) + "\n\n")
	}

	b.WriteString(SubtleStyle.Render("tab next • ↑/↓ pick a city • enter select or continue • esc back") + "\n")
	return b.String()
}
