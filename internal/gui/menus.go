package gui

import (
	"fyne.io/fyne/v2"

	"flip-clock/internal/commands"
	"flip-clock/internal/logger"
)

// BuildMainMenu lays out one menu per command category.
func BuildMainMenu(table *commands.Table, tr Translator, log logger.Logger) *fyne.MainMenu {
	menus := make([]*fyne.Menu, 0, len(commands.Categories()))

	for _, cat := range commands.Categories() {
		var items []*fyne.MenuItem
		for _, def := range commands.InCategory(cat) {
			if def.SeparatorBefore {
				items = append(items, fyne.NewMenuItemSeparator())
			}
			cmd := def.Command
			items = append(items, fyne.NewMenuItem(tr.T(def.MessageID), func() {
				log.Debug("Menu", "command selected", map[string]interface{}{
					"command": cmd.String(),
				})
				if err := table.Dispatch(cmd); err != nil {
					log.Error("Menu", err, map[string]interface{}{"command": cmd.String()})
				}
			}))
		}
		menus = append(menus, fyne.NewMenu(tr.T(cat.MessageID()), items...))
	}

	return fyne.NewMainMenu(menus...)
}
