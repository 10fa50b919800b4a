package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	dropdownWidth  = 10
	dropdownHeight = 8
)

type choiceItem int

func (c choiceItem) FilterValue() string { return fmt.Sprintf("%d", int(c)) }

type choiceDelegate struct{}

func (choiceDelegate) Height() int                             { return 1 }
func (choiceDelegate) Spacing() int                            { return 0 }
func (choiceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (choiceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	c, ok := item.(choiceItem)
	if !ok {
		return
	}
	label := fmt.Sprintf("%2d", int(c))
	if index == m.Index() {
		label = choiceSelectedStyle.Render("> " + label)
	} else {
		label = choiceStyle.Render("  " + label)
	}
	_, _ = io.WriteString(w, label)
}

func newDropdown(choices []int, selected int) list.Model {
	items := make([]list.Item, len(choices))
	for i, n := range choices {
		items[i] = choiceItem(n)
	}
	l := list.New(items, choiceDelegate{}, dropdownWidth, dropdownHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Select(selected)
	return l
}

func selectedChoice(l list.Model) (int, bool) {
	c, ok := l.SelectedItem().(choiceItem)
	return int(c), ok
}
