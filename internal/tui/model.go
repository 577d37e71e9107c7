package tui

import (
	"context"
	"time"

	"go-contact-form/internal/domain"
	"go-contact-form/internal/form"
	"go-contact-form/pkg/validation"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus order through the page: three inputs, the message area, then the
// submit control.
const (
	focusName = iota
	focusEmail
	focusSubject
	focusMessage
	focusSubmit
	focusCount
)

// fieldForFocus maps a focus slot to its controller field name.
var fieldForFocus = map[int]string{
	focusName:    validation.FieldName,
	focusEmail:   validation.FieldEmail,
	focusSubject: validation.FieldSubject,
	focusMessage: validation.FieldMessage,
}

type submitDoneMsg struct {
	err error
}

type resetFormMsg struct{}

// Model is the contact form page. All user interaction happens on the
// Bubble Tea event loop; only the submission itself runs off it, serialized
// by the controller.
type Model struct {
	controller *form.Controller
	toasts     *toastRecorder

	inputs  [3]textinput.Model // name, email, subject
	message textarea.Model
	spinner spinner.Model

	focus      int
	resetDelay time.Duration
	width      int
	styles     Styles
}

// NewModel builds the contact form page around the given usecase.
func NewModel(uc domain.ContactUsecase, resetDelay time.Duration) Model {
	if resetDelay <= 0 {
		resetDelay = form.DefaultResetDelay
	}

	toasts := &toastRecorder{}
	styles := DefaultStyles()

	m := Model{
		controller: form.NewController(uc, toasts, resetDelay),
		toasts:     toasts,
		resetDelay: resetDelay,
		styles:     styles,
	}

	name := textinput.New()
	name.Placeholder = "Jane Doe"
	name.CharLimit = validation.NameMax
	name.Focus()

	email := textinput.New()
	email.Placeholder = "jane@example.com"
	email.CharLimit = validation.EmailMax

	subject := textinput.New()
	subject.Placeholder = "What is this about?"
	subject.CharLimit = validation.SubjectMax

	m.inputs = [3]textinput.Model{name, email, subject}

	msg := textarea.New()
	msg.Placeholder = "How can we help?"
	msg.CharLimit = validation.MessageMax
	msg.SetHeight(5)
	msg.ShowLineNumbers = false

	m.message = msg

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m.spinner = sp

	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 8
		if w > 60 {
			w = 60
		}
		if w > 0 {
			for i := range m.inputs {
				m.inputs[i].Width = w
			}
			m.message.SetWidth(w)
		}
		return m, nil

	case submitDoneMsg:
		if msg.err == nil {
			// The controller has already cleared its values and scheduled
			// its own reversion; this tick re-renders the page in step.
			return m, tea.Tick(m.resetDelay, func(time.Time) tea.Msg {
				return resetFormMsg{}
			})
		}
		return m, nil

	case resetFormMsg:
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.message.SetValue("")
		m.toasts.Clear()
		m.setFocus(focusName)
		return m, textinput.Blink

	case spinner.TickMsg:
		if m.controller.State() != form.StateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	// The success screen only reacts to quit; the timer brings the form back.
	if m.controller.State() == form.StateSuccess {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		if m.focus == focusMessage && msg.String() == "down" {
			break // let the textarea move its own cursor
		}
		m.setFocus((m.focus + 1) % focusCount)
		return m, textinput.Blink

	case "shift+tab", "up":
		if m.focus == focusMessage && msg.String() == "up" {
			break
		}
		m.setFocus((m.focus - 1 + focusCount) % focusCount)
		return m, textinput.Blink

	case "enter":
		if m.focus == focusSubmit {
			return m.submit()
		}
		if m.focus != focusMessage {
			// Enter advances through the single-line inputs
			m.setFocus(m.focus + 1)
			return m, textinput.Blink
		}

	case "ctrl+s":
		return m.submit()
	}

	return m.updateFocused(msg)
}

// submit kicks off the controller flow on a background command. While a
// submission is in flight the control is disabled: a second enter lands
// here, sees the submitting state and does nothing.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.controller.State() == form.StateSubmitting {
		return m, nil
	}

	c := m.controller
	return m, tea.Batch(
		func() tea.Msg {
			return submitDoneMsg{err: c.Submit(context.Background())}
		},
		m.spinner.Tick,
	)
}

// updateFocused routes a key to the focused widget and mirrors the new value
// into the controller so validation always sees the latest input.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusName, focusEmail, focusSubject:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.controller.SetField(fieldForFocus[m.focus], m.inputs[m.focus].Value())
	case focusMessage:
		m.message, cmd = m.message.Update(msg)
		m.controller.SetField(validation.FieldMessage, m.message.Value())
	}

	return m, cmd
}

func (m *Model) setFocus(focus int) {
	if focus < 0 || focus >= focusCount {
		focus = focusName
	}
	m.focus = focus

	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if focus == focusMessage {
		m.message.Focus()
	} else {
		m.message.Blur()
	}
}
