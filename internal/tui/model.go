// Package tui is the interactive dashboard: a profile card, a statistics
// card and a task list on one screen.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dashboard/internal/avatar"
	"dashboard/internal/config"
	"dashboard/internal/dashboard"
	"dashboard/internal/profile"
	"dashboard/internal/service"
)

// panel is the focused card while viewing.
type panel int

const (
	panelTasks panel = iota
	panelProfile
)

// field is the focused control while editing the profile.
type field int

const (
	fieldName field = iota
	fieldEmail
	fieldMethod
	fieldAvatar
	fieldCount
)

const inputWidth = 32

// avatarReadMsg carries the result of an avatar file read.
type avatarReadMsg struct {
	upload  profile.Upload
	dataURL string
	err     error
}

// Model is the dashboard page. The service owns user and tasks; the model
// keeps the latest snapshot for rendering and sends intents back.
type Model struct {
	ctx context.Context
	svc service.Service
	cfg *config.Config

	user  dashboard.User
	tasks []dashboard.Task

	focus  panel
	cursor int

	editor     *profile.Editor
	field      field
	nameInput  textinput.Model
	emailInput textinput.Model
	urlInput   textinput.Model
	fileInput  textinput.Model

	alert     string
	status    string
	statusErr bool

	keys     KeyMap
	help     help.Model
	progress progress.Model
	styles   Styles
	width    int
	height   int
	quitting bool
}

// New loads the dashboard state from svc and returns the page model.
func New(ctx context.Context, svc service.Service, cfg *config.Config) (Model, error) {
	snap, err := service.Load(ctx, svc)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		ctx:        ctx,
		svc:        svc,
		cfg:        cfg,
		user:       snap.User,
		tasks:      snap.Tasks,
		editor:     profile.New(),
		nameInput:  newInput("Name"),
		emailInput: newInput("Email"),
		urlInput:   newInput("Enter image URL"),
		fileInput:  newInput("Path to an image file"),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		progress:   progress.New(progress.WithSolidFill("63"), progress.WithoutPercentage(), progress.WithWidth(40)),
		styles:     NewStyles(),
	}
	return m, nil
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = inputWidth
	return ti
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case avatarReadMsg:
		return m.handleAvatarRead(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.alert != "" {
			if key.Matches(msg, m.keys.Dismiss) {
				m.alert = ""
			}
			return m, nil
		}
		if m.editor.Editing() {
			return m.handleEditKey(msg)
		}
		return m.handleViewKey(msg)
	}

	return m, nil
}

func (m Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Focus):
		if m.focus == panelTasks {
			m.focus = panelProfile
		} else {
			m.focus = panelTasks
		}
	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()
	case key.Matches(msg, m.keys.Up):
		if m.focus == panelTasks && m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.focus == panelTasks && m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.focus == panelTasks {
			m.toggleSelected()
		}
	}
	return m, nil
}

// toggleSelected sends a toggle intent for the task under the cursor.
func (m *Model) toggleSelected() {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return
	}
	id := m.tasks[m.cursor].ID
	if err := m.svc.ToggleTask(m.ctx, id); err != nil {
		m.setError(fmt.Errorf("toggle task %d: %w", id, err))
		return
	}
	m.cfg.Debugf("toggled task %d", id)
	m.reloadTasks()
}

func (m *Model) reloadTasks() {
	tasks, err := m.svc.Tasks(m.ctx)
	if err != nil {
		m.setError(err)
		return
	}
	m.tasks = tasks
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	m.editor.Begin(m.user)
	m.focus = panelProfile
	m.syncInputs()
	m.fileInput.SetValue("")
	m.status = ""
	cmd := m.focusField(fieldName)
	return m, cmd
}

// syncInputs copies the editor's working copy into the text fields.
func (m *Model) syncInputs() {
	form := m.editor.Form()
	setInput(&m.nameInput, form.Name)
	setInput(&m.emailInput, form.Email)
	setInput(&m.urlInput, m.editor.URLFieldValue())
}

func setInput(ti *textinput.Model, v string) {
	ti.SetValue(v)
	ti.CursorEnd()
}

// focusField moves edit focus to f.
func (m *Model) focusField(f field) tea.Cmd {
	m.field = f
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.urlInput.Blur()
	m.fileInput.Blur()

	switch f {
	case fieldName:
		return m.nameInput.Focus()
	case fieldEmail:
		return m.emailInput.Focus()
	case fieldAvatar:
		if m.editor.Method() == profile.MethodUpload {
			return m.fileInput.Focus()
		}
		return m.urlInput.Focus()
	}
	return nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		return m.save(), nil
	case key.Matches(msg, m.keys.Cancel):
		m.editor.Cancel()
		m.blurAll()
		m.status = "edit cancelled"
		m.statusErr = false
		return m, nil
	case key.Matches(msg, m.keys.Next):
		cmd := m.focusField((m.field + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.focusField((m.field + fieldCount - 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.Reset):
		if m.editor.ResetPreview() {
			m.syncInputs()
			m.fileInput.SetValue("")
			m.status = "image reset"
			m.statusErr = false
		}
		return m, nil
	}

	switch m.field {
	case fieldMethod:
		if key.Matches(msg, m.keys.Method) {
			if m.editor.Method() == profile.MethodURL {
				m.editor.SelectMethod(profile.MethodUpload)
			} else {
				m.editor.SelectMethod(profile.MethodURL)
			}
		}
		return m, nil
	case fieldAvatar:
		if m.editor.Method() == profile.MethodUpload {
			if key.Matches(msg, m.keys.Load) {
				return m.startUpload()
			}
			var cmd tea.Cmd
			m.fileInput, cmd = m.fileInput.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		before := m.urlInput.Value()
		m.urlInput, cmd = m.urlInput.Update(msg)
		if v := m.urlInput.Value(); v != before {
			m.editor.SetAvatarURL(v)
		}
		return m, cmd
	case fieldName:
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.editor.SetName(m.nameInput.Value())
		return m, cmd
	case fieldEmail:
		var cmd tea.Cmd
		m.emailInput, cmd = m.emailInput.Update(msg)
		m.editor.SetEmail(m.emailInput.Value())
		return m, cmd
	}
	return m, nil
}

// save sends the update intent and closes the edit session once the
// service accepts it. A rejected update keeps the session open.
func (m Model) save() Model {
	updated, ok := m.editor.Merged()
	if !ok {
		return m
	}
	if err := m.svc.UpdateUser(m.ctx, updated); err != nil {
		m.setError(fmt.Errorf("save profile: %w", err))
		return m
	}
	m.editor.Save()
	m.blurAll()

	user, err := m.svc.User(m.ctx)
	if err != nil {
		m.setError(err)
		return m
	}
	m.user = user
	m.status = "profile saved"
	m.statusErr = false
	m.cfg.Debugf("saved profile for user %d", user.ID)
	return m
}

// startUpload validates the file in the path field and starts reading it.
func (m Model) startUpload() (tea.Model, tea.Cmd) {
	f, err := avatar.Stat(m.fileInput.Value())
	if err != nil {
		m.alert = "Could not open file: " + m.fileInput.Value()
		return m, nil
	}
	up, err := m.editor.BeginUpload(m.ctx, f)
	if err != nil {
		m.alert = alertText(err)
		return m, nil
	}
	m.status = "reading " + f.Path + "..."
	m.statusErr = false
	m.cfg.Debugf("reading avatar %s (%s, %d bytes)", f.Path, f.MediaType, f.Size)
	return m, readAvatar(up)
}

func readAvatar(up profile.Upload) tea.Cmd {
	return func() tea.Msg {
		data, err := up.Read()
		return avatarReadMsg{upload: up, dataURL: data, err: err}
	}
}

func (m Model) handleAvatarRead(msg avatarReadMsg) Model {
	stale := msg.upload.Ctx.Err() != nil
	applied := m.editor.CompleteUpload(msg.upload, msg.dataURL, msg.err)
	switch {
	case applied:
		m.syncInputs()
		m.status = "image ready"
		m.statusErr = false
	case stale:
		m.cfg.Debugf("dropped avatar read %s", msg.upload.ID)
	case msg.err != nil:
		m.setError(fmt.Errorf("read image: %w", msg.err))
	}
	return m
}

func (m *Model) blurAll() {
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.urlInput.Blur()
	m.fileInput.Blur()
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	m.cfg.Debugf("error: %v", err)
}

// alertText is the blocking message shown for a rejected file.
func alertText(err error) string {
	switch {
	case errors.Is(err, avatar.ErrNotImage):
		return "Please select an image file"
	case errors.Is(err, avatar.ErrTooLarge):
		return "File size must be less than 5MB"
	default:
		return err.Error()
	}
}
