package view

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moneta/internal/api"
	"moneta/internal/statement"
)

type uploadState int

const (
	uploadStateFilePick uploadState = iota
	uploadStatePreview
	uploadStateUploading
	uploadStateResult
)

type UploadModel struct {
	CommonModel
	client *api.Client

	state      uploadState
	filePicker filepicker.Model
	path       string
	preview    *statement.Preview

	result *api.UploadResult
	status string
	err    error
}

func NewUploadModel(client *api.Client) UploadModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return UploadModel{
		client:     client,
		filePicker: fp,
	}
}

func (m UploadModel) Title() string { return "Import Statement" }

func (m UploadModel) ShortHelp() string {
	switch m.state {
	case uploadStatePreview:
		return "Enter: upload | Esc: cancel"
	case uploadStateResult:
		return "Esc: back"
	}

	return "Esc: back | Enter: select"
}

func (m UploadModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == uploadStatePreview && msg.Type == tea.KeyEnter {
			m.state = uploadStateUploading
			m.status = fmt.Sprintf("Uploading %s...", m.path)

			return m, m.uploadCmd(m.path)
		}

	case previewMsg:
		if msg.err != nil {
			m.state = uploadStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.preview = msg.preview
		m.state = uploadStatePreview

		return m, nil

	case uploadResultMsg:
		m.state = uploadStateResult
		m.err = msg.err

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.result = msg.result
		m.status = msg.result.Message

		return m, nil
	}

	if m.state != uploadStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.path = path
		return m, m.previewCmd(path)
	}

	return m, cmd
}

func (m UploadModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case uploadStatePreview, uploadStateResult:
		m.state = uploadStateFilePick
		m.preview = nil
		m.result = nil
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m UploadModel) View() string {
	switch m.state {
	case uploadStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select a CSV statement to import:\n\n%s", m.filePicker.View()),
		)
	case uploadStatePreview:
		return m.viewPreview()
	case uploadStateUploading:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case uploadStateResult:
		return m.viewResult()
	}

	return ""
}

func (m UploadModel) viewPreview() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Preview of %s (%d rows, %d malformed)\n\n", m.path, m.preview.Rows(), len(m.preview.Errors))

	shown := min(len(m.preview.Records), 15)
	for _, record := range m.preview.Records[:shown] {
		fmt.Fprintf(&b, "  %s  %10s  %-18s %s\n",
			record.Date, FormatAmount(record.Amount), record.Category, record.Description)
	}

	if len(m.preview.Records) > shown {
		fmt.Fprintf(&b, "  ... and %d more\n", len(m.preview.Records)-shown)
	}

	if len(m.preview.Errors) > 0 {
		b.WriteString("\nMalformed rows (will be skipped):\n")

		for _, rowErr := range m.preview.Errors {
			fmt.Fprintf(&b, "  line %d: %v\n", rowErr.Line, rowErr.Err)
		}
	}

	b.WriteString("\n(Enter to upload, Esc to cancel)")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m UploadModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	summary := fmt.Sprintf(
		"Processed %d, added %d, skipped %d.",
		m.result.TransactionsProcessed,
		m.result.TransactionsAdded,
		m.result.TransactionsSkipped,
	)

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(summary) +
			"\n\n" + m.status + "\n\n(Esc to go back)",
	)
}

// Messages

type previewMsg struct {
	preview *statement.Preview
	err     error
}

type uploadResultMsg struct {
	result *api.UploadResult
	err    error
}

// previewCmd parses the file locally so malformed rows surface before
// anything is sent to the backend.
func (m UploadModel) previewCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return previewMsg{err: err}
		}
		defer f.Close()

		preview, err := statement.Parse(f)
		if err != nil {
			return previewMsg{err: err}
		}

		return previewMsg{preview: preview}
	}
}

func (m UploadModel) uploadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return uploadResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := APICtx()
		defer cancel()

		result, err := m.client.UploadStatement(ctx, filepath.Base(path), f)
		if err != nil {
			return uploadResultMsg{err: err}
		}

		return uploadResultMsg{result: result}
	}
}
