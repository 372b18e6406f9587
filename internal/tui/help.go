package tui

import (
	"fmt"
	"strings"
)

// helpText lists the configured key bindings
func (m Model) helpText() string {
	km := m.Config.KeyMappings
	rows := []struct{ key, desc string }{
		{km.NextTask + "/" + km.PrevTask, "move down / up"},
		{km.AddTask, "add task"},
		{km.EditTask, "edit task"},
		{km.SaveForm, "save form (tab/enter moves between fields, esc cancels)"},
		{km.ToggleTask, "toggle completed"},
		{km.DeleteTask, "delete task"},
		{km.SetDeadline, "set deadline"},
		{km.SetPriority, "set priority"},
		{km.SetCategory, "set category"},
		{km.SortTasks, "sort by completion"},
		{km.SortPriority, "sort by priority"},
		{km.CycleFilter, "cycle filter"},
		{km.CreateList, "new list"},
		{km.DeleteList, "delete list"},
		{km.PrevList + "/" + km.NextList, "previous / next list"},
		{km.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle().Render("Key bindings"))
	b.WriteString("\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-8s %s\n", r.key, r.desc)
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle().Render("press any key to close"))
	return b.String()
}
