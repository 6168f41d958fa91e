package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"emoboard/internal/board"
	"emoboard/internal/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmClear
	modalHelp
)

// uiState is shared with the board subscription, so it lives behind a pointer while
// appModel itself is copied through Update.
type uiState struct {
	status string
	isErr  bool
	dirty  bool
}

func (s *uiState) setStatus(msg string) { s.status, s.isErr = msg, false }
func (s *uiState) setErr(msg string)    { s.status, s.isErr = msg, true }

func (s *uiState) observe(b *board.Board, ev board.Event) {
	switch ev.Kind {
	case board.EventAdded:
		if e, _, ok := b.Find(ev.EmotionID); ok {
			s.setStatus(fmt.Sprintf("Logged %s %s", e.Icon, e.Type))
		}
	case board.EventDeleted:
		s.setStatus("Deleted")
	case board.EventReordered:
		s.setStatus(fmt.Sprintf("Moved card %d → %d", ev.From+1, ev.To+1))
	case board.EventCleared:
		s.setStatus("Board cleared")
	case board.EventReloaded:
		s.setStatus("Reloaded changes from disk")
	default:
		return
	}
	s.dirty = true
}

type appModel struct {
	board       *board.Board
	log         *zap.Logger
	keys        keyMap
	help        help.Model
	list        list.Model
	add         addModal
	ui          *uiState
	unsubscribe func()

	modal        modalKind
	confirmFocus confirmModalFocus

	grabbing bool
	grabFrom int
	grabTo   int

	width  int
	height int
}

func newAppModel(b *board.Board, log *zap.Logger) appModel {
	if log == nil {
		log = zap.NewNop()
	}
	l := list.New(nil, cardDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	m := appModel{
		board: b,
		log:   log,
		keys:  newKeyMap(),
		help:  help.New(),
		list:  l,
		ui:    &uiState{},
	}
	ui := m.ui
	m.unsubscribe = b.Subscribe(func(ev board.Event) { ui.observe(b, ev) })

	if le := b.LoadErr(); le != nil {
		ui.setErr(fmt.Sprintf("Could not restore saved emotions (%s); starting with an empty board", le.Kind))
	}
	m.syncList()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(m.width, m.bodyHeight())
	case storeChangedMsg:
		m.log.Debug("store changed on disk; reloading")
		if m.grabbing {
			// The preview order is gone, so the list must show the board again.
			m.grabbing = false
			m.syncList()
			m.list.Select(m.grabFrom)
		}
		m.board.Reload()
		if le := m.board.LoadErr(); le != nil {
			m.ui.setErr(fmt.Sprintf("Could not reload emotions (%s); keeping the current board", le.Kind))
		}
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	default:
		if m.board.IsAddModalOpen() {
			m.add.input, cmd = m.add.input.Update(msg)
		}
	}
	if m.ui.dirty {
		m.syncList()
	}
	return m, cmd
}

func (m appModel) updateKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch {
	case m.board.IsAddModalOpen():
		return m.updateAddModal(msg)
	case m.modal == modalConfirmClear:
		return m.updateConfirmClear(msg), nil
	case m.modal == modalHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Cancel, m.keys.Quit) || msg.Type == tea.KeyEnter {
			m.modal = modalNone
		}
		return m, nil
	case m.grabbing:
		return m.updateGrab(msg), nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.modal = modalHelp
		return m, nil
	case key.Matches(msg, m.keys.View):
		next := model.ViewStats
		if m.board.CurrentView() == model.ViewStats {
			next = model.ViewBoard
		}
		if err := m.board.SetCurrentView(next); err != nil {
			m.ui.setErr(err.Error())
		}
		return m, nil
	}

	if m.board.CurrentView() == model.ViewStats {
		return m.updateStatsKey(msg), nil
	}
	return m.updateBoardKey(msg)
}

func (m appModel) updateBoardKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	idx := m.list.Index()
	n := m.board.Len()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.list.CursorUp()
	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown()
	case key.Matches(msg, m.keys.Add):
		m.board.OpenAddModal()
		m.add = newAddModal()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Delete):
		if e, ok := m.selectedEmotion(); ok {
			m.board.DeleteEmotion(e.ID)
			m.checkSaved()
		}
	case key.Matches(msg, m.keys.Grab):
		if n > 0 {
			m.grabbing = true
			m.grabFrom, m.grabTo = idx, idx
			m.syncList()
		}
	case key.Matches(msg, m.keys.MoveUp):
		if n > 0 && idx > 0 {
			m.move(idx, idx-1)
		}
	case key.Matches(msg, m.keys.MoveDown):
		if idx < n-1 {
			m.move(idx, idx+1)
		}
	case key.Matches(msg, m.keys.Clear):
		if n > 0 {
			m.modal = modalConfirmClear
			m.confirmFocus = confirmFocusCancel
		}
	}
	return m, nil
}

func (m appModel) updateStatsKey(msg tea.KeyMsg) appModel {
	var f model.StatsFilter
	switch {
	case key.Matches(msg, m.keys.Today):
		f = model.FilterToday
	case key.Matches(msg, m.keys.Week):
		f = model.FilterWeek
	case key.Matches(msg, m.keys.Month):
		f = model.FilterMonth
	case key.Matches(msg, m.keys.NextFilter):
		f = cycleFilter(m.board.StatsFilter(), 1)
	case key.Matches(msg, m.keys.PrevFilter):
		f = cycleFilter(m.board.StatsFilter(), -1)
	default:
		return m
	}
	if err := m.board.SetStatsFilter(f); err != nil {
		m.ui.setErr(err.Error())
	}
	return m
}

func cycleFilter(f model.StatsFilter, delta int) model.StatsFilter {
	n := len(model.StatsFilters)
	i := slices.Index(model.StatsFilters, f)
	return model.StatsFilters[((i+delta)%n+n)%n]
}

func (m appModel) updateAddModal(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.board.CloseAddModal()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.add.cycle(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.add.cycle(-1)
		return m, nil
	case tea.KeyEnter:
		typ, comment, err := model.ValidateInput(string(m.add.selected()), m.add.input.Value())
		if err != nil {
			m.add.err = err.Error()
			return m, nil
		}
		m.board.AddEmotion(typ, comment)
		m.checkSaved()
		m.syncList()
		m.list.Select(0)
		return m, nil
	}
	var cmd tea.Cmd
	m.add.input, cmd = m.add.input.Update(msg)
	m.add.err = ""
	return m, cmd
}

func (m appModel) updateConfirmClear(msg tea.KeyMsg) appModel {
	confirmed := false
	switch msg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.confirmFocus = m.confirmFocus.toggle()
		return m
	case "y", "Y":
		confirmed = true
	case "n", "N", "esc", "ctrl+g", "q":
	case "enter":
		confirmed = m.confirmFocus == confirmFocusConfirm
	default:
		return m
	}
	m.modal = modalNone
	if confirmed {
		m.board.ClearAllEmotions()
		m.checkSaved()
	}
	return m
}

func (m appModel) updateGrab(msg tea.KeyMsg) appModel {
	n := m.board.Len()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.grabTo > 0 {
			m.grabTo--
		}
	case key.Matches(msg, m.keys.Down):
		if m.grabTo < n-1 {
			m.grabTo++
		}
	case key.Matches(msg, m.keys.Drop):
		m.grabbing = false
		if m.grabTo != m.grabFrom {
			m.move(m.grabFrom, m.grabTo)
			return m
		}
	case key.Matches(msg, m.keys.Cancel):
		m.grabbing = false
		m.syncList()
		m.list.Select(m.grabFrom)
		return m
	default:
		return m
	}
	m.syncList()
	m.list.Select(m.grabTo)
	return m
}

func (m *appModel) move(from, to int) {
	if err := m.board.ReorderEmotions(from, to); err != nil {
		m.ui.setErr(err.Error())
		return
	}
	m.checkSaved()
	m.syncList()
	m.list.Select(to)
}

func (m *appModel) checkSaved() {
	if err := m.board.SaveErr(); err != nil {
		m.ui.setErr("Not saved: " + err.Error())
	}
}

func (m appModel) selectedEmotion() (model.Emotion, bool) {
	it, ok := m.list.SelectedItem().(emotionItem)
	if !ok {
		return model.Emotion{}, false
	}
	return it.emotion, true
}

// syncList rebuilds the list from the board. While a card is grabbed the list shows where it
// would land, which is exactly the order ReorderEmotions(grabFrom, grabTo) produces.
func (m *appModel) syncList() {
	emotions := m.board.Emotions()
	grabbedAt := -1
	if m.grabbing {
		emotions = previewMove(emotions, m.grabFrom, m.grabTo)
		grabbedAt = m.grabTo
	}
	idx := m.list.Index()
	m.list.SetItems(emotionItems(emotions, grabbedAt))
	if idx >= len(emotions) {
		idx = len(emotions) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.ui.dirty = false
}

func previewMove(emotions []model.Emotion, from, to int) []model.Emotion {
	if from < 0 || from >= len(emotions) || to < 0 || to >= len(emotions) {
		return emotions
	}
	moved := emotions[from]
	out := slices.Delete(slices.Clone(emotions), from, from+1)
	return slices.Insert(out, to, moved)
}

const (
	headerHeight = 2
	footerHeight = 2
)

func (m appModel) bodyHeight() int {
	return max(1, m.height-headerHeight-footerHeight)
}

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}
	bodyH := m.bodyHeight()

	var body string
	switch {
	case m.board.IsAddModalOpen():
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, m.add.view(m.width))
	case m.modal == modalConfirmClear:
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center,
			renderClearConfirm(m.width, m.board.Len(), m.confirmFocus))
	case m.modal == modalHelp:
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, renderHelp(m.width))
	case m.board.CurrentView() == model.ViewStats:
		body = lipgloss.NewStyle().Padding(0, 2).Render(renderStats(m.board, m.width-4))
	case m.board.Len() == 0:
		body = styleMuted().Padding(1, 2).Render("No emotions yet. Press a to log how you feel.")
	default:
		body = m.list.View()
	}

	return normalizePane(m.viewHeader(), m.width, headerHeight) + "\n" +
		normalizePane(body, m.width, bodyH) + "\n" +
		normalizePane(m.viewFooter(), m.width, footerHeight)
}

func (m appModel) viewHeader() string {
	now := m.board.Now()
	accent := accentFor(model.ThemeAt(now))

	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render("emoboard")
	greeting := lipgloss.NewStyle().Foreground(colorSurfaceFg).Render(model.GreetingAt(now))

	tab := func(v model.View, label string) string {
		st := lipgloss.NewStyle().Padding(0, 1)
		if m.board.CurrentView() == v {
			return st.Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg).Render(label)
		}
		return st.Foreground(colorMuted).Render(label)
	}
	count := styleMuted().Render(strconv.Itoa(m.board.Len()) + " logged")
	left := title + "  " + greeting
	right := tab(model.ViewBoard, "Board") + tab(model.ViewStats, "Statistics") + "  " + count

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right
	rule := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("─", max(0, m.width)))
	return line + "\n" + rule
}

func (m appModel) viewFooter() string {
	status := ""
	if m.ui.status != "" {
		st := lipgloss.NewStyle().Foreground(colorCardMetaFg)
		if m.ui.isErr {
			st = st.Foreground(colorErrorFg)
		}
		status = st.Render(m.ui.status)
	}

	var km help.KeyMap = boardHelp{m.keys}
	switch {
	case m.grabbing:
		km = grabHelp{m.keys}
	case m.board.CurrentView() == model.ViewStats:
		km = statsHelp{m.keys}
	}
	return status + "\n" + m.help.View(km)
}
