package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"

	"tableflip.dev/cutover/pkg/plan"
	"tableflip.dev/cutover/pkg/task"
)

// Do opens the phase browser: phases on the left, that phase's tasks on the
// right. Read-only; the dash command is the richer front end.
func Do(ctx context.Context, tasks []task.Task) error {
	if len(tasks) == 0 {
		return errors.New("ui: no tasks loaded")
	}

	groups := plan.ByPhase(tasks, "")

	iTable := tui.NewTable(1, 0)

	index := tui.NewVBox(
		iTable,
		tui.NewSpacer(),
	)
	index.SetBorder(true)
	index.SetSizePolicy(tui.Preferred, tui.Expanding)

	cTable := tui.NewTable(1, 0)
	cTable.SetFocused(true)
	cTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use left️ or right arrows to navigate, ESC or 'q' to QUIT`)

	collection := tui.NewVBox(cTable)
	collection.SetTitle(groups[0].Key)
	collection.SetBorder(true)
	collection.SetSizePolicy(tui.Expanding, tui.Maximum)

	selector := tui.NewHBox(index, collection)

	root := tui.NewVBox(
		selector,
		tui.NewSpacer(),
		status,
	)

	u, err := tui.New(root)
	if err != nil {
		return err
	}

	d := impl{
		Groups:         groups,
		indexes:        iTable,
		indexTitle:     "phases",
		indexView:      index,
		collection:     cTable,
		collectionView: collection,
	}
	d.populateIndex()

	iTable.OnSelectionChanged(func(table *tui.Table) {
		d.populateCollection()
	})

	u.SetKeybinding("Left", func() {
		d.focusIndex()
	})

	u.SetKeybinding("Right", func() {
		d.focusCollection()
	})

	u.SetKeybinding("Esc", func() { u.Quit() })
	u.SetKeybinding("q", func() { u.Quit() })

	d.populateCollection()
	d.focusCollection()

	if err := u.Run(); err != nil {
		return err
	}
	return nil
}

type impl struct {
	Groups []plan.Group

	dirty string

	indexes    *tui.Table
	indexTitle string
	indexView  *tui.Box

	collection      *tui.Table
	collectionView  *tui.Box
	collectionTitle string
}

func (d *impl) focusIndex() {
	d.indexes.SetFocused(true)
	d.indexView.SetTitle(strings.ToUpper(d.indexTitle))

	d.collection.SetFocused(false)
	d.collectionView.SetTitle("")
}

func (d *impl) focusCollection() {
	d.indexes.SetFocused(false)
	d.indexView.SetTitle(d.indexTitle)

	d.collection.SetFocused(true)
	d.collectionView.SetTitle(d.collectionTitle)
}

func (d *impl) populateIndex() {
	d.indexes.RemoveRows()
	d.indexes.Select(0)

	for _, g := range d.Groups {
		d.indexes.AppendRow(tui.NewLabel(fmt.Sprintf("%s  %d/%d", g.Key, g.Done(), len(g.Tasks))))
	}
}

func (d *impl) populateCollection() {
	selected := ""
	if i := d.indexes.Selected(); i >= 0 && i < len(d.Groups) {
		selected = d.Groups[i].Key
	}

	if d.dirty != selected {
		d.collection.RemoveRows()

		d.collectionTitle = selected

		for _, g := range d.Groups {
			if g.Key != selected {
				continue
			}
			for i := range g.Tasks {
				t := &g.Tasks[i]
				desc := t.Description
				if desc == "" {
					desc = "(no desc)"
				}
				d.collection.AppendRow(tui.NewLabel(
					fmt.Sprintf("%-10s %-4s %s", t.ID, t.Status.Meta().Short, desc)))
			}
		}
		d.dirty = selected
	}
}
