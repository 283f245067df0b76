package models

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/fl4re/ec2-inventory/internal/styles"
	"github.com/fl4re/ec2-inventory/internal/utils"
)

type item interface {
	list.Item
	Title() string
	Description() string
}

// Group Item
type groupItem struct {
	key       string
	addresses []string
}

func (i groupItem) Title() string { return styles.TitleStyle.Render(i.key) }
func (i groupItem) Description() string {
	return styles.DescriptionStyle.Render(utils.Plural(len(i.addresses), "host") + ": " + utils.ArrayToCSV(i.addresses, 3))
}
func (i groupItem) FilterValue() string { return i.key }

// Host Item
type hostItem struct {
	address string
	group   string
}

func (i hostItem) Title() string       { return styles.TitleStyle.Render(i.address) }
func (i hostItem) Description() string { return styles.DescriptionStyle.Render("Group: " + i.group) }
func (i hostItem) FilterValue() string { return i.address }
