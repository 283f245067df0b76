package models

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fl4re/ec2-inventory/internal/commands"
	"github.com/fl4re/ec2-inventory/internal/config"
	"github.com/fl4re/ec2-inventory/internal/inventory"
	"github.com/fl4re/ec2-inventory/internal/keys"
	"github.com/fl4re/ec2-inventory/internal/messages"
	"github.com/fl4re/ec2-inventory/internal/utils"
)

type inventoryState int

const (
	inventoryStateGroups inventoryState = iota
	inventoryStateHosts
)

type inventoryModel struct {
	load      func() tea.Cmd
	tick      tea.Cmd
	ssh       config.SSH
	doc       *inventory.Document
	groupList list.Model
	hostList  list.Model
	group     string
	state     inventoryState
	status    string
	loading   bool
	err       error
	keys      *keys.ListKeyMap
	header    []string
}

func (m inventoryModel) Init() tea.Cmd {
	return tea.Batch(m.tick, m.load())
}

// activeList returns the list shown in the current state.
func (m *inventoryModel) activeList() *list.Model {
	if m.state == inventoryStateHosts {
		return &m.hostList
	}
	return &m.groupList
}

// Filtering reports whether the active list is taking filter input.
func (m inventoryModel) Filtering() bool {
	return m.activeList().FilterState() == list.Filtering
}

// Update handles incoming messages and updates the inventoryModel's state.
func (m inventoryModel) Update(msg tea.Msg) (inventoryModel, tea.Cmd) {
	m.header = []string{"Groups"}
	if m.state == inventoryStateHosts {
		m.header = append(m.header, m.group)
	}
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.groupList.SetSize(msg.Width, msg.Height)
		m.hostList.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Refresh):
			return m.handleRefresh()

		case m.state == inventoryStateGroups && key.Matches(msg, m.keys.Choose, m.keys.Details):
			return m.handleOpenGroup()

		case m.state == inventoryStateHosts && key.Matches(msg, m.keys.Back) &&
			m.hostList.FilterState() == list.Unfiltered:
			return m.handleCloseGroup()

		case m.state == inventoryStateHosts && key.Matches(msg, m.keys.Ssh):
			return m.handleSshAction()
		}

	case messages.InventoryLoadedMsg:
		return m.handleInventoryLoaded((*inventory.Document)(msg))

	case messages.SshExitMsg:
		return m.handleSshExit(msg)

	case messages.ErrMsg:
		return m.handleError(msg)
	}

	active := m.activeList()
	*active, cmd = active.Update(msg)
	return m, cmd
}

func (m inventoryModel) handleRefresh() (inventoryModel, tea.Cmd) {
	m.status = "Refreshing inventory..."
	m.loading = true
	m.err = nil
	return m, tea.Batch(m.tick, m.load())
}

func (m inventoryModel) handleOpenGroup() (inventoryModel, tea.Cmd) {
	selectedItem := m.groupList.SelectedItem()
	if selectedItem == nil {
		return m, nil
	}

	group := selectedItem.(groupItem)
	m.group = group.key
	m.state = inventoryStateHosts
	m.header = []string{"Groups", group.key}
	cmd := m.hostList.SetItems(hostItems(group))
	m.hostList.ResetSelected()
	return m, cmd
}

func (m inventoryModel) handleCloseGroup() (inventoryModel, tea.Cmd) {
	m.state = inventoryStateGroups
	m.group = ""
	m.header = []string{"Groups"}
	return m, nil
}

func (m inventoryModel) handleSshAction() (inventoryModel, tea.Cmd) {
	selectedItem := m.hostList.SelectedItem()
	if selectedItem == nil {
		return m, nil
	}

	host := selectedItem.(hostItem)
	m.status = fmt.Sprintf("Attempting to SSH into %s...", host.address)
	m.err = nil
	return m, tea.Sequence(tea.ClearScreen, commands.SshIntoHostCmd(m.ssh.User, m.ssh.KeyPath(), host.address))
}

func (m inventoryModel) handleInventoryLoaded(doc *inventory.Document) (inventoryModel, tea.Cmd) {
	m.doc = doc
	items := make([]list.Item, 0, len(doc.Groups))
	for _, k := range doc.GroupKeys() {
		items = append(items, groupItem{key: k, addresses: doc.Groups[k]})
	}
	cmd := m.groupList.SetItems(items)

	if m.state == inventoryStateHosts {
		if addresses, ok := doc.Groups[m.group]; ok {
			cmd = tea.Batch(cmd, m.hostList.SetItems(hostItems(groupItem{key: m.group, addresses: addresses})))
		} else {
			m.state = inventoryStateGroups
			m.group = ""
		}
	}

	m.loading = false
	m.status = fmt.Sprintf("Ready: %s, %s", utils.Plural(len(doc.Groups), "group"), utils.Plural(doc.HostCount(), "host"))
	m.err = nil
	return m, cmd
}

func (m inventoryModel) handleSshExit(msg messages.SshExitMsg) (inventoryModel, tea.Cmd) {
	if msg.Err != nil {
		m.err = fmt.Errorf("SSH command failed: %s", msg.Err)
		m.status = "SSH Failed"
	} else {
		m.status = "SSH session ended."
		m.err = nil
	}
	return m, nil
}

func (m inventoryModel) handleError(msg messages.ErrMsg) (inventoryModel, tea.Cmd) {
	m.err = msg
	m.status = "Error"
	m.loading = false
	return m, nil
}

func (m inventoryModel) View() string {
	if m.state == inventoryStateHosts {
		return m.hostList.View()
	}
	return m.groupList.View()
}

func hostItems(group groupItem) []list.Item {
	items := make([]list.Item, len(group.addresses))
	for i, address := range group.addresses {
		items[i] = hostItem{address: address, group: group.key}
	}
	return items
}
