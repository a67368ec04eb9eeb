package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/emberwood-game/emberwood/internal/storage"
	"github.com/emberwood-game/emberwood/pkg/state"
	"github.com/emberwood-game/emberwood/pkg/world"
)

const namePlaceholder = "What is your name?"

// GameUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type GameUI struct {
	gs    *state.GameState
	store storage.Storage

	nameInput textinput.Model
	roomView  viewport.Model
	ready     bool
	width     int
	height    int

	// Transient status line, replaced on every event.
	status string

	showQuitModal bool
}

type saveDoneMsg struct {
	err error
}

type loadDoneMsg struct {
	sf  *state.SaveFile
	err error
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	roomNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	exitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	npcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	panelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var itemTitle = cases.Title(language.English)

func NewGameUI(gs *state.GameState, store storage.Storage) GameUI {
	ti := textinput.New()
	ti.Placeholder = namePlaceholder
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40

	vp := viewport.New(60, 20)

	return GameUI{
		gs:        gs,
		store:     store,
		nameInput: ti,
		roomView:  vp,
	}
}

func (m GameUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.roomView.Width = msg.Width - 6
		m.roomView.Height = msg.Height - 8
		m.ready = true
		m.refreshRoomView()
		return m, nil

	case saveDoneMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("Save failed: " + msg.err.Error())
		} else {
			m.status = noticeStyle.Render("Game saved.")
		}
		return m, nil

	case loadDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, storage.ErrSaveNotFound) {
				m.status = errorStyle.Render("No saved game to load.")
			} else {
				m.status = errorStyle.Render("Load failed: " + msg.err.Error())
			}
			return m, nil
		}
		// Restore validates before replacing anything; on failure the
		// current session continues untouched.
		if err := m.gs.Restore(msg.sf); err != nil {
			m.status = errorStyle.Render("Load failed: " + err.Error())
			return m, nil
		}
		m.status = noticeStyle.Render("Game loaded.")
		m.refreshRoomView()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.showQuitModal = true
			return m, nil
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m GameUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.gs.Phase {
	case state.PhaseNameEntry:
		return m.handleNameEntryKey(msg)
	case state.PhasePlaying:
		return m.handlePlayingKey(msg)
	case state.PhaseDialogue:
		return m.handleDialogueKey(msg)
	case state.PhaseInventoryView:
		return m.handleInventoryKey(msg)
	}
	return m, nil
}

func (m GameUI) handleNameEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.apply(state.SubmitNameEvent{Name: m.nameInput.Value()})
		m.refreshRoomView()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m GameUI) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.apply(state.MoveEvent{Direction: world.North})
	case tea.KeyDown:
		m.apply(state.MoveEvent{Direction: world.South})
	case tea.KeyRight:
		m.apply(state.MoveEvent{Direction: world.East})
	case tea.KeyLeft:
		m.apply(state.MoveEvent{Direction: world.West})
	case tea.KeyEsc:
		m.showQuitModal = true
		return m, nil
	default:
		switch msg.String() {
		case "t":
			m.apply(state.InteractEvent{})
		case "i":
			m.apply(state.ToggleInventoryEvent{})
		case "f5":
			sf := m.gs.SaveFile()
			return m, func() tea.Msg {
				return saveDoneMsg{err: m.store.SaveGame(context.Background(), sf)}
			}
		case "f9":
			return m, func() tea.Msg {
				sf, err := m.store.LoadGame(context.Background())
				return loadDoneMsg{sf: sf, err: err}
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			snap := m.gs.Snapshot()
			idx := int(msg.String()[0] - '1')
			if snap.Room != nil && idx < len(snap.Room.Items) {
				m.apply(state.TakeEvent{ItemName: snap.Room.Items[idx].Name})
			}
		}
	}
	m.refreshRoomView()
	return m, nil
}

func (m GameUI) handleDialogueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.apply(state.SelectUpEvent{})
	case tea.KeyDown:
		m.apply(state.SelectDownEvent{})
	case tea.KeyEnter:
		m.apply(state.ConfirmEvent{})
	case tea.KeyEsc:
		m.apply(state.CancelEvent{})
	}
	m.refreshRoomView()
	return m, nil
}

func (m GameUI) handleInventoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.apply(state.CancelEvent{})
		return m, nil
	}
	switch msg.String() {
	case "i":
		m.apply(state.ToggleInventoryEvent{})
	case "c":
		snap := m.gs.Snapshot()
		if err := clipboard.WriteAll(inventoryText(snap.Player.Inventory)); err != nil {
			m.status = errorStyle.Render("Copy failed: " + err.Error())
		} else {
			m.status = noticeStyle.Render("Inventory copied to clipboard.")
		}
	}
	return m, nil
}

// apply forwards one event to the game state and turns recoverable gameplay
// errors into a status line instead of failing.
func (m *GameUI) apply(ev state.Event) {
	m.status = ""
	err := m.gs.Apply(ev)
	switch {
	case err == nil:
		if notice := m.gs.Snapshot().Notice; notice != "" {
			m.status = noticeStyle.Render(notice)
		}
	case errors.Is(err, world.ErrNoExit):
		m.status = errorStyle.Render("There is no exit that way.")
	case errors.Is(err, world.ErrItemNotFound):
		m.status = errorStyle.Render("You don't see that here.")
	case errors.Is(err, state.ErrEmptyName):
		m.status = errorStyle.Render("Please enter a name first.")
	default:
		m.status = errorStyle.Render(err.Error())
	}
}

func (m *GameUI) refreshRoomView() {
	snap := m.gs.Snapshot()
	if snap.Room == nil {
		return
	}
	m.roomView.SetContent(renderRoom(snap, m.roomView.Width))
}

func renderRoom(snap state.Snapshot, width int) string {
	if width <= 0 {
		width = 60
	}

	var b strings.Builder
	b.WriteString(roomNameStyle.Render(snap.Room.Name) + "\n\n")
	b.WriteString(bodyStyle.Render(wordwrap.String(snap.Room.Description, width)) + "\n\n")

	if len(snap.Room.Items) > 0 {
		b.WriteString("You see:\n")
		for i, it := range snap.Room.Items {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %d. %s", i+1, itemTitle.String(it.Name))) + "\n")
		}
		b.WriteString("\n")
	}

	if snap.Room.NPCName != "" {
		b.WriteString(npcStyle.Render(snap.Room.NPCName+" is here.") + "\n\n")
	}

	b.WriteString(exitStyle.Render("Exits: "+exitsLine(snap.Room.Exits)) + "\n")
	return b.String()
}

func exitsLine(exits map[world.Direction]string) string {
	if len(exits) == 0 {
		return "none"
	}
	dirs := make([]string, 0, len(exits))
	for dir := range exits {
		dirs = append(dirs, string(dir))
	}
	sort.Strings(dirs)
	return strings.Join(dirs, ", ")
}

func inventoryText(items []world.Item) string {
	if len(items) == 0 {
		return "Inventory: empty"
	}
	var b strings.Builder
	b.WriteString("Inventory:\n")
	for _, it := range items {
		b.WriteString(fmt.Sprintf("- %s: %s\n", itemTitle.String(it.Name), it.Description))
	}
	return b.String()
}

func (m GameUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	switch m.gs.Phase {
	case state.PhaseNameEntry:
		return m.renderNameEntry()
	case state.PhaseDialogue:
		return m.renderDialogueModal()
	case state.PhaseInventoryView:
		return m.renderInventoryModal()
	default:
		return m.renderPlaying()
	}
}

func (m GameUI) renderNameEntry() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("EMBERWOOD"))
	content.WriteString("\n\n")
	content.WriteString("A small adventure in six rooms.")
	content.WriteString("\n\n")
	content.WriteString(m.nameInput.View())
	content.WriteString("\n\n")
	if m.status != "" {
		content.WriteString(m.status)
		content.WriteString("\n\n")
	}
	content.WriteString(helpStyle.Render("Enter to begin, Ctrl+C to quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) renderPlaying() string {
	snap := m.gs.Snapshot()

	header := titleStyle.Render("EMBERWOOD") + helpStyle.Render("  ·  "+snap.Player.Name)

	status := m.status
	if status == "" {
		status = " "
	}

	help := helpStyle.Render("arrows move · t talk · 1-9 take · i inventory · f5 save · f9 load · esc quit")

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.roomView.View(),
		status,
		help,
	))
}

func (m GameUI) renderDialogueModal() string {
	snap := m.gs.Snapshot()
	if snap.Dialogue == nil {
		return m.renderPlaying()
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(snap.Dialogue.NPCName))
	content.WriteString("\n\n")
	content.WriteString(wordwrap.String(snap.Dialogue.Text, 52))
	content.WriteString("\n\n")

	for i, opt := range snap.Dialogue.Options {
		if i == snap.Dialogue.Cursor {
			content.WriteString(modalSelectedItemStyle.Render("▶ " + opt.Label))
		} else {
			content.WriteString(modalItemStyle.Render("  " + opt.Label))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(helpStyle.Render("↑/↓ choose · Enter confirm · Esc leave"))

	modal := modalStyle.Width(58).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) renderInventoryModal() string {
	snap := m.gs.Snapshot()

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Inventory"))
	content.WriteString("\n\n")

	if len(snap.Player.Inventory) == 0 {
		content.WriteString("Your pack is empty.")
		content.WriteString("\n")
	} else {
		for _, it := range snap.Player.Inventory {
			content.WriteString(itemStyle.Render("• "+itemTitle.String(it.Name)) + "\n")
			content.WriteString(helpStyle.Render(wordwrap.String("  "+it.Description, 50)) + "\n")
		}
	}

	if m.status != "" {
		content.WriteString("\n" + m.status)
	}

	content.WriteString("\n")
	content.WriteString(helpStyle.Render("i/Esc close · c copy to clipboard"))

	modal := modalStyle.Width(56).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N", "esc":
				m.showQuitModal = false
				return m, nil
			}
		}
	}
	return m, nil
}

func (m GameUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Unsaved progress will be lost.")
	content.WriteString("\n\n")
	content.WriteString(helpStyle.Render("Press Y to quit, N to keep playing"))

	modal := modalStyle.Width(44).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}
