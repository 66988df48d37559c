package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhall/internal/ui/theme"
)

// OptionList is an answer option selector. Unlike a one-shot choice, the
// marked option can be changed any number of times; the caller reads
// ChosenID after each selection. Reveal mode is used on the results view
// to highlight the correct and chosen options.
type OptionList struct {
	OptionIDs []string
	Options   []string
	Cursor    int
	ChosenID  string

	Reveal    bool
	CorrectID string
}

// NewOptionList creates an option list with the cursor on the first option.
// chosenID may be empty (nothing marked yet).
func NewOptionList(ids, labels []string, chosenID string) OptionList {
	cursor := 0
	for i, id := range ids {
		if id == chosenID {
			cursor = i
			break
		}
	}
	return OptionList{
		OptionIDs: ids,
		Options:   labels,
		Cursor:    cursor,
		ChosenID:  chosenID,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and marking.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Reveal {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		if o.Cursor >= 0 && o.Cursor < len(o.OptionIDs) {
			o.ChosenID = o.OptionIDs[o.Cursor]
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		id := ""
		if i < len(o.OptionIDs) {
			id = o.OptionIDs[i]
		}

		prefix := "  "
		if i == o.Cursor && !o.Reveal {
			prefix = "▸ "
		}

		mark := " "
		if id != "" && id == o.ChosenID {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		if o.Reveal {
			switch {
			case id == o.CorrectID:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case id == o.ChosenID:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		switch {
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case id != "" && id == o.ChosenID:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
