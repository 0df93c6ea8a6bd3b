package output

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScanUpdate reports progress of a repository settings scan
type ScanUpdate struct {
	Index  int // 1-based position of the repository being fetched
	Total  int
	Repo   string
	Failed bool
}

// ChannelScanReporter forwards scan progress over a channel
type ChannelScanReporter struct {
	updates chan ScanUpdate
	once    sync.Once
}

// NewChannelScanReporter creates a new channel-based scan reporter
func NewChannelScanReporter() *ChannelScanReporter {
	return &ChannelScanReporter{
		updates: make(chan ScanUpdate, 100),
	}
}

// Updates returns the channel for receiving updates
func (r *ChannelScanReporter) Updates() <-chan ScanUpdate {
	return r.updates
}

// Close closes the update channel (safe to call multiple times)
func (r *ChannelScanReporter) Close() {
	r.once.Do(func() {
		close(r.updates)
	})
}

// RepoStarted reports that a repository fetch has started
func (r *ChannelScanReporter) RepoStarted(index, total int, repo string) {
	r.updates <- ScanUpdate{Index: index, Total: total, Repo: repo}
}

// RepoFailed reports that a repository fetch has failed
func (r *ChannelScanReporter) RepoFailed(index, total int, repo string) {
	r.updates <- ScanUpdate{Index: index, Total: total, Repo: repo, Failed: true}
}

// ScanTUIModel is the bubbletea model for scan progress
type ScanTUIModel struct {
	spinner  spinner.Model
	current  ScanUpdate
	failures int
	quitting bool
	styles   scanStyles
	updates  <-chan ScanUpdate
}

type scanStyles struct {
	spinnerStyle lipgloss.Style
	repoStyle    lipgloss.Style
	countStyle   lipgloss.Style
	errorStyle   lipgloss.Style
}

// scanUpdateMsg carries a ScanUpdate into the bubbletea loop
type scanUpdateMsg ScanUpdate

// NewScanTUIModel creates a new scan TUI model
func NewScanTUIModel(updates <-chan ScanUpdate) ScanTUIModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ScanTUIModel{
		spinner: s,
		updates: updates,
		styles: scanStyles{
			spinnerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
			repoStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			countStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
	}
}

// Init initializes the bubbletea model
func (m ScanTUIModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.checkForUpdates())
}

// checkForUpdates checks for updates from the channel
func (m ScanTUIModel) checkForUpdates() tea.Cmd {
	if m.updates == nil {
		return nil
	}

	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg {
		select {
		case update, ok := <-m.updates:
			if !ok {
				return tea.Quit()
			}
			return scanUpdateMsg(update)
		default:
			// No update available, return nil to continue polling
			return nil
		}
	})
}

// Update handles message updates for the bubbletea model
func (m ScanTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, tea.Batch(cmd, m.checkForUpdates())

	case scanUpdateMsg:
		m.current = ScanUpdate(msg)
		if m.current.Failed {
			m.failures++
		}
		return m, m.checkForUpdates()

	case tea.QuitMsg:
		return m, tea.Quit
	}

	return m, nil
}

// View renders the scan progress line
func (m ScanTUIModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.current.Total == 0 {
		b.WriteString(fmt.Sprintf("  %s %s", m.spinner.View(), m.styles.spinnerStyle.Render("Fetching settings...")))
		return b.String()
	}

	count := m.styles.countStyle.Render(fmt.Sprintf("(%d/%d)", m.current.Index, m.current.Total))
	repo := m.styles.repoStyle.Render(m.current.Repo)
	b.WriteString(fmt.Sprintf("  %s Fetching settings %s %s", m.spinner.View(), count, repo))

	if m.failures > 0 {
		b.WriteString(" " + m.styles.errorStyle.Render(fmt.Sprintf("%d failed", m.failures)))
	}

	return b.String()
}

// RunScanTUI runs the scan progress display until the update channel
// is closed
func RunScanTUI(updates <-chan ScanUpdate) error {
	m := NewScanTUIModel(updates)
	// Use WithInput/WithOutput to avoid TTY requirement in non-interactive environments
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	_, err := p.Run()
	return err
}
