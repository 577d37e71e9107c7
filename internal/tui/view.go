package tui

import (
	"strings"

	"go-contact-form/internal/form"
	"go-contact-form/pkg/validation"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles for the page.
type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	FieldError lipgloss.Style
	Submit     lipgloss.Style
	SubmitHot  lipgloss.Style
	SubmitBusy lipgloss.Style
	ToastOK    lipgloss.Style
	ToastBad   lipgloss.Style
	Success    lipgloss.Style
	Help       lipgloss.Style
	Spinner    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1),
		Label:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		FieldError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Submit:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 2),
		SubmitHot: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).Padding(0, 2),
		SubmitBusy: lipgloss.NewStyle().Faint(true).Padding(0, 2),
		ToastOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		ToastBad:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Success: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).Padding(1, 3),
		Help:    lipgloss.NewStyle().Faint(true).MarginTop(1),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Contact Us"))
	b.WriteString("\n")

	if m.controller.State() == form.StateSuccess {
		panel := m.styles.Success.Render(
			m.styles.ToastOK.Render("✓ Message sent!") + "\n\n" +
				"Thanks for reaching out.\nWe'll get back to you soon.")
		b.WriteString(panel)
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("returning to the form shortly…  esc: quit"))
		return b.String()
	}

	labels := [3]string{"Name", "Email", "Subject"}
	fields := [3]string{validation.FieldName, validation.FieldEmail, validation.FieldSubject}
	for i := range m.inputs {
		b.WriteString(m.styles.Label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg := m.controller.FieldError(fields[i]); msg != "" {
			b.WriteString(m.styles.FieldError.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.styles.Label.Render("Message"))
	b.WriteString("\n")
	b.WriteString(m.message.View())
	b.WriteString("\n")
	if msg := m.controller.FieldError(validation.FieldMessage); msg != "" {
		b.WriteString(m.styles.FieldError.Render(msg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.submitView())
	b.WriteString("\n")

	if text, kind := m.toasts.Last(); text != "" {
		switch kind {
		case toastSuccess:
			b.WriteString(m.styles.ToastOK.Render(text))
		case toastError:
			b.WriteString(m.styles.ToastBad.Render(text))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("tab: next field • enter: send • esc: quit"))
	return b.String()
}

func (m Model) submitView() string {
	if m.controller.State() == form.StateSubmitting {
		return m.spinner.View() + m.styles.SubmitBusy.Render("Sending…")
	}
	if m.focus == focusSubmit {
		return m.styles.SubmitHot.Render("Send Message")
	}
	return m.styles.Submit.Render("Send Message")
}
