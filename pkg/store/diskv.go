package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/cutover/pkg/task"
)

// Persistence is the session store: the currently loaded plan plus the
// sparse overlay of timestamp edits, surviving between CLI invocations.
// Replace is the only way tasks change; it is a full swap that also drops
// the overlay, matching the re-upload lifecycle.
type Persistence interface {
	Tasks(ctx context.Context) ([]task.Task, error)
	Replace(ctx context.Context, tasks []task.Task) error
	Overlay(ctx context.Context) (map[string]task.Times, error)
	SetTimes(ctx context.Context, id string, edit task.Times) error
	Merged(ctx context.Context) ([]task.Task, error)
}

const (
	tasksKey   = "tasks"
	overlayKey = "overlay"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Tasks(ctx context.Context) ([]task.Task, error) {
	if !p.d.Has(tasksKey) {
		return nil, errors.New("store: no plan loaded, run `cutover load` or `cutover pull` first")
	}
	data, err := p.d.Read(tasksKey)
	if err != nil {
		return nil, fmt.Errorf("store: read tasks: %w", err)
	}
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("store: decode tasks: %w", err)
	}
	return tasks, nil
}

func (p *persistence) Replace(_ context.Context, tasks []task.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("store: encode tasks: %w", err)
	}
	if err := p.d.Write(tasksKey, data); err != nil {
		return fmt.Errorf("store: write tasks: %w", err)
	}
	// A fresh plan starts with a clean overlay.
	if p.d.Has(overlayKey) {
		if err := p.d.Erase(overlayKey); err != nil {
			return fmt.Errorf("store: clear overlay: %w", err)
		}
	}
	return nil
}

func (p *persistence) Overlay(_ context.Context) (map[string]task.Times, error) {
	if !p.d.Has(overlayKey) {
		return map[string]task.Times{}, nil
	}
	data, err := p.d.Read(overlayKey)
	if err != nil {
		return nil, fmt.Errorf("store: read overlay: %w", err)
	}
	overlay := make(map[string]task.Times)
	if err := json.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("store: decode overlay: %w", err)
	}
	return overlay, nil
}

func (p *persistence) SetTimes(ctx context.Context, id string, edit task.Times) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("store: task id required")
	}
	if edit.Empty() {
		return errors.New("store: no timestamp fields set")
	}

	tasks, err := p.Tasks(ctx)
	if err != nil {
		return err
	}
	idx := task.FindByID(tasks, id)
	if idx < 0 {
		return fmt.Errorf("store: unknown task id %q", id)
	}

	overlay, err := p.Overlay(ctx)
	if err != nil {
		return err
	}
	cur := overlay[tasks[idx].ID]
	cur.Merge(edit)
	overlay[tasks[idx].ID] = cur

	data, err := json.Marshal(overlay)
	if err != nil {
		return fmt.Errorf("store: encode overlay: %w", err)
	}
	if err := p.d.Write(overlayKey, data); err != nil {
		return fmt.Errorf("store: write overlay: %w", err)
	}
	return nil
}

func (p *persistence) Merged(ctx context.Context) ([]task.Task, error) {
	tasks, err := p.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	overlay, err := p.Overlay(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if edit, ok := overlay[tasks[i].ID]; ok {
			tasks[i].Apply(edit)
		}
	}
	return tasks, nil
}
