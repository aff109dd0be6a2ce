// Package tui hosts the editor and its pickers in a terminal UI. All posting
// logic lives in the wrapped state machines; this package only routes
// keystrokes and renders.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/capsy-labs/capsy-companion/internal/capsy"
	"github.com/capsy-labs/capsy-companion/internal/datepicker"
	"github.com/capsy-labs/capsy-companion/internal/domain"
	"github.com/capsy-labs/capsy-companion/internal/editor"
	"github.com/capsy-labs/capsy-companion/internal/locationpicker"
	"github.com/capsy-labs/capsy-companion/internal/validate"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// overlay is the single modal layer above the editor. At most one overlay is
// open at a time.
type overlay int

const (
	overlayNone overlay = iota
	overlayDatePicker
	overlayLocationPicker
	overlayNotice
	overlaySaved
	overlayAttach
)

const (
	focusTitle = iota
	focusBody
)

var dateFields = []string{validate.FieldYear, validate.FieldMonth, validate.FieldDay}

type saveDoneMsg struct {
	ref *capsy.PostRef
	err error
}

type searchDoneMsg struct{ err error }

type attachDoneMsg struct{ err error }

type loadDoneMsg struct{ err error }

type Model struct {
	editor editor.Client
	picker *locationpicker.Model
	dates  *datepicker.Model
	logger logger.Logger

	// Post to pre-populate from, empty for a fresh draft.
	editPostID string

	overlay overlay
	focus   int

	titleInput   textinput.Model
	bodyInput    textarea.Model
	dateInputs   []textinput.Model
	dateFocus    int
	keywordInput textinput.Model
	attachInput  textinput.Model

	notice  string
	savedID string
	saving  bool
	loading bool

	width  int
	height int
}

func New(ed editor.Client, picker *locationpicker.Model, log logger.Logger, editPostID string) *Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Focus()

	body := textarea.New()
	body.Placeholder = "What do you want to say?"
	body.SetHeight(8)

	dates := make([]textinput.Model, len(dateFields))
	for i, f := range dateFields {
		ti := textinput.New()
		ti.Placeholder = f
		ti.Width = 6
		dates[i] = ti
	}
	dates[0].CharLimit = 4
	dates[1].CharLimit = 2
	dates[2].CharLimit = 2

	keyword := textinput.New()
	keyword.Placeholder = "Search for a place"
	keyword.CharLimit = 100

	attach := textinput.New()
	attach.Placeholder = "Path to file (blank-separated for several)"

	return &Model{
		editor:       ed,
		picker:       picker,
		dates:        datepicker.New(),
		logger:       log.WithComponent("TUI"),
		editPostID:   editPostID,
		titleInput:   title,
		bodyInput:    body,
		dateInputs:   dates,
		keywordInput: keyword,
		attachInput:  attach,
		loading:      editPostID != "",
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.editPostID != "" {
		cmds = append(cmds, m.loadCmd(m.editPostID))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.titleInput.Width = msg.Width - 10
		m.bodyInput.SetWidth(msg.Width - 6)
		return m, nil

	case loadDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.openNotice(userMessage(msg.err, "could not load the post, please try again"))
			return m, nil
		}
		m.syncFromDraft()
		return m, nil

	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.openNotice(userMessage(msg.err, "save failed, please try again"))
			return m, nil
		}
		m.savedID = msg.ref.ID
		m.overlay = overlaySaved
		return m, nil

	case searchDoneMsg:
		if msg.err != nil {
			m.openNotice(userMessage(msg.err, "place search failed, please try again"))
		}
		return m, nil

	case attachDoneMsg:
		if msg.err != nil {
			m.openNotice(userMessage(msg.err, "could not attach the file"))
			return m, nil
		}
		m.overlay = overlayNone
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayNotice:
		m.overlay = overlayNone
		m.notice = ""
		return m, nil
	case overlaySaved:
		return m.handleSavedKey(msg)
	case overlayDatePicker:
		return m.handleDatePickerKey(msg)
	case overlayLocationPicker:
		return m.handleLocationPickerKey(msg)
	case overlayAttach:
		return m.handleAttachKey(msg)
	}

	return m.handleEditorKey(msg)
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab":
		m.toggleFocus()
		return m, nil
	case "ctrl+t":
		m.toggleMode()
		return m, nil
	case "ctrl+d":
		if m.draft().Mode == domain.ModeTimeCapsule {
			m.openDatePicker()
		}
		return m, nil
	case "ctrl+l":
		if m.draft().Mode == domain.ModeTimeCapsule {
			m.openLocationPicker()
		}
		return m, nil
	case "ctrl+a":
		m.openAttach()
		return m, nil
	case "ctrl+r":
		if n := len(m.draft().Media); n > 0 {
			m.editor.RemoveMedia(n - 1)
		}
		return m, nil
	case "ctrl+s":
		if m.saving {
			return m, nil
		}
		m.syncToDraft()
		m.saving = true
		return m, m.saveCmd()
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.editor.Reset()
		m.editPostID = ""
		m.savedID = ""
		m.overlay = overlayNone
		m.syncFromDraft()
		return m, nil
	default:
		return m, tea.Quit
	}
}

func (m *Model) handleDatePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "tab", "shift+tab":
		m.dateInputs[m.dateFocus].Blur()
		if msg.String() == "tab" {
			m.dateFocus = (m.dateFocus + 1) % len(m.dateInputs)
		} else {
			m.dateFocus = (m.dateFocus + len(m.dateInputs) - 1) % len(m.dateInputs)
		}
		m.dateInputs[m.dateFocus].Focus()
		return m, nil
	case "enter":
		if rd, ok := m.dates.Confirm(); ok {
			m.editor.SetRevealDate(rd)
			m.overlay = overlayNone
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.dateInputs[m.dateFocus], cmd = m.dateInputs[m.dateFocus].Update(msg)

	// The state machine is authoritative: it rejects non-digits and
	// overlong input, and the visible field follows it.
	field := dateFields[m.dateFocus]
	m.dates.Input(field, m.dateInputs[m.dateFocus].Value())
	m.dateInputs[m.dateFocus].SetValue(m.dates.Value(field))
	m.dateInputs[m.dateFocus].CursorEnd()

	return m, cmd
}

func (m *Model) handleLocationPickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var key locationpicker.Key
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "down":
		key = locationpicker.KeyDown
	case "up":
		key = locationpicker.KeyUp
	case "tab":
		key = locationpicker.KeyTab
	case "enter":
		key = locationpicker.KeyEnter
	default:
		var cmd tea.Cmd
		m.keywordInput, cmd = m.keywordInput.Update(msg)
		m.picker.Keyword = m.keywordInput.Value()
		return m, cmd
	}

	switch m.picker.HandleKey(key) {
	case locationpicker.ActionSearch:
		return m, m.searchCmd()
	case locationpicker.ActionSelect:
		if loc := m.picker.Selected(); loc != nil {
			m.editor.SetLocation(*loc)
		}
		m.overlay = overlayNone
	}
	return m, nil
}

func (m *Model) handleAttachKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "enter":
		paths := strings.Fields(m.attachInput.Value())
		if len(paths) == 0 {
			m.overlay = overlayNone
			return m, nil
		}
		return m, m.attachCmd(paths)
	}

	var cmd tea.Cmd
	m.attachInput, cmd = m.attachInput.Update(msg)
	return m, cmd
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.overlay != overlayNone {
		return nil
	}
	if m.focus == focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return cmd
}

func (m *Model) toggleFocus() {
	if m.focus == focusTitle {
		m.focus = focusBody
		m.titleInput.Blur()
		m.bodyInput.Focus()
	} else {
		m.focus = focusTitle
		m.bodyInput.Blur()
		m.titleInput.Focus()
	}
}

func (m *Model) toggleMode() {
	if m.draft().Mode == domain.ModeTimeCapsule {
		m.editor.SetMode(domain.ModeGeneral)
	} else {
		m.editor.SetMode(domain.ModeTimeCapsule)
	}
}

func (m *Model) openDatePicker() {
	m.overlay = overlayDatePicker
	m.dateFocus = 0
	for i, f := range dateFields {
		m.dateInputs[i].SetValue(m.dates.Value(f))
		m.dateInputs[i].Blur()
	}
	m.dateInputs[0].Focus()
}

func (m *Model) openLocationPicker() {
	m.overlay = overlayLocationPicker
	m.keywordInput.SetValue(m.picker.Keyword)
	m.keywordInput.Focus()
}

func (m *Model) openAttach() {
	m.overlay = overlayAttach
	m.attachInput.SetValue("")
	m.attachInput.Focus()
}

func (m *Model) openNotice(text string) {
	m.notice = text
	m.overlay = overlayNotice
}

func (m *Model) draft() domain.Draft {
	return m.editor.Draft()
}

// syncToDraft pushes the text widgets into the orchestrator before a save.
func (m *Model) syncToDraft() {
	m.editor.SetTitle(m.titleInput.Value())
	m.editor.SetBody(m.bodyInput.Value())
}

// syncFromDraft pulls orchestrator state into the widgets, after a load or a
// reset.
func (m *Model) syncFromDraft() {
	d := m.draft()
	m.titleInput.SetValue(d.Title)
	m.bodyInput.SetValue(d.Body)
	for i, f := range dateFields {
		switch f {
		case validate.FieldYear:
			m.dates.Input(f, d.RevealDate.Year)
		case validate.FieldMonth:
			m.dates.Input(f, d.RevealDate.Month)
		case validate.FieldDay:
			m.dates.Input(f, d.RevealDate.Day)
		}
		m.dateInputs[i].SetValue(m.dates.Value(f))
	}
}

func (m *Model) loadCmd(postID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		return loadDoneMsg{err: m.editor.Load(ctx, postID)}
	}
}

func (m *Model) saveCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		ref, err := m.editor.Save(ctx)
		return saveDoneMsg{ref: ref, err: err}
	}
}

func (m *Model) searchCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return searchDoneMsg{err: m.picker.Search(ctx)}
	}
}

func (m *Model) attachCmd(paths []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		return attachDoneMsg{err: m.editor.AttachFiles(ctx, paths...)}
	}
}

// userMessage prefers the error's own text; err values from the editor carry
// user-facing messages already.
func userMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
