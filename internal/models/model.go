package models

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fl4re/ec2-inventory/internal/commands"
	"github.com/fl4re/ec2-inventory/internal/config"
	"github.com/fl4re/ec2-inventory/internal/inventory"
	"github.com/fl4re/ec2-inventory/internal/keys"
	"github.com/fl4re/ec2-inventory/internal/styles"
)

// Model represents the state of the inventory browser.
type Model struct {
	inventoryModel inventoryModel
	spinner        spinner.Model
	keys           *keys.ListKeyMap
	width          int
	height         int
	statusStyle    lipgloss.Style
}

// configureList sets common styles and properties for a list.Model.
func configureList(l *list.Model) {
	st := list.DefaultStyles()
	st.Title = styles.SubHeaderStyle
	st.NoItems = styles.StatusStyle.UnsetPaddingLeft()
	st.StatusBar = styles.StatusStyle
	l.Help.Styles.ShortDesc = styles.HelpStyle
	l.Help.Styles.FullDesc = styles.HelpStyle
	l.Help.Styles.ShortKey = styles.HelpStyle
	l.Help.Styles.FullKey = styles.HelpStyle
	l.Paginator.ActiveDot = styles.ActivePager.Render("•")
	l.Paginator.InactiveDot = styles.InactivePager.Render("•")
	l.Styles = st
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
}

// newSpinner creates and configures a new spinner model.
func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.StatusStyle
	return s
}

// newGroupList creates and configures the group list.
func newGroupList(listkeys *keys.ListKeyMap) list.Model {
	groupList := list.New([]list.Item{}, ItemDelegate{}, 0, 0)
	configureList(&groupList)
	groupList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			listkeys.Choose,
			listkeys.Refresh,
			listkeys.Quit,
		}
	}
	groupList.AdditionalShortHelpKeys = groupList.AdditionalFullHelpKeys
	return groupList
}

// newHostList creates and configures the host list of one group.
func newHostList(listkeys *keys.ListKeyMap) list.Model {
	hostList := list.New([]list.Item{}, ItemDelegate{}, 0, 0)
	configureList(&hostList)
	hostList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			listkeys.Ssh,
			listkeys.Back,
			listkeys.Refresh,
		}
	}
	hostList.AdditionalShortHelpKeys = hostList.AdditionalFullHelpKeys
	return hostList
}

// NewModel returns a browser that builds its document from provider.
func NewModel(ctx context.Context, provider inventory.Provider, ssh config.SSH, logger *slog.Logger) Model {
	s := newSpinner()
	listkeys := keys.NewListKeyMap()

	m := Model{
		keys:        listkeys,
		spinner:     s,
		statusStyle: styles.StatusStyle,
	}

	m.inventoryModel = inventoryModel{
		load: func() tea.Cmd {
			return commands.LoadInventoryCmd(ctx, provider, logger)
		},
		tick:      s.Tick,
		ssh:       ssh,
		status:    "Loading inventory...",
		loading:   true,
		groupList: newGroupList(listkeys),
		hostList:  newHostList(listkeys),
		keys:      listkeys,
		header:    []string{"Groups"},
	}

	return m
}

// Init starts the first inventory load.
func (m Model) Init() tea.Cmd {
	return m.inventoryModel.Init()
}

// Update handles incoming messages and updates the model's state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := styles.AppStyle.GetFrameSize()
		m.width = msg.Width - h
		m.height = msg.Height - v
		msg.Height = m.height - 3
		msg.Width = m.width

		m.inventoryModel, cmd = m.inventoryModel.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if !m.inventoryModel.Filtering() && key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	m.inventoryModel, cmd = m.inventoryModel.Update(msg)
	return m, cmd
}

// Header generates the header string for the application.
func (m Model) Header(items []string) string {
	ret := styles.HeaderStyle.Render(" EC2 Inventory ")
	for i, h := range items {
		if i > 0 {
			ret += styles.HeaderBarStyle.Render(" > ")
		} else {
			ret += styles.HeaderBarStyle.Render(" ")
		}
		ret += styles.SubHeaderStyle.Render(h)
	}
	remainingWidth := max(m.width-lipgloss.Width(ret), 0)
	padding := styles.HeaderBarStyle.Width(remainingWidth).Render("") + "\n\n"
	return ret + padding
}

// View renders the TUI.
func (m Model) View() string {
	var s strings.Builder

	if m.inventoryModel.err != nil {
		s.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.inventoryModel.err)) + "\n")
	}
	s.WriteString(m.Header(m.inventoryModel.header))
	s.WriteString(m.inventoryModel.View())

	status, spin := m.renderStatusAndSpinner()
	st := m.statusStyle.Render(spin) + m.statusStyle.Render(status)

	remainingWidth := max(m.width-lipgloss.Width(st), 0)
	remainingHeight := max(m.height-lipgloss.Height(s.String()), 0)
	padding := m.statusStyle.Width(remainingWidth).Render("")

	s.WriteString(lipgloss.NewStyle().Height(remainingHeight).Render(""))

	s.WriteString("\n" + st + padding)

	return styles.AppStyle.Render(s.String())
}

// renderStatusAndSpinner returns the status line and, while loading, the spinner.
func (m Model) renderStatusAndSpinner() (string, string) {
	if m.inventoryModel.loading {
		return " " + m.inventoryModel.status, m.spinner.View()
	}
	return fmt.Sprintf("Status: %s", m.inventoryModel.status), ""
}
