package tui

import (
	"context"

	"emoboard/internal/board"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type Options struct {
	// Theme is auto|light|dark.
	Theme string
	// WatchPath is the store file to watch for writes from other processes. Empty disables it.
	WatchPath string
	Logger    *zap.Logger
}

func Run(b *board.Board, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	applyColorPreferences(opts.Theme)

	m := newAppModel(b, log)
	defer m.unsubscribe()

	p := tea.NewProgram(m, tea.WithAltScreen())

	if opts.WatchPath != "" {
		sw, err := NewStoreWatcher(opts.WatchPath, func() { p.Send(storeChangedMsg{}) }, log)
		if err == nil {
			err = sw.Start(context.Background())
		}
		if err != nil {
			log.Warn("store watch disabled", zap.String("path", opts.WatchPath), zap.Error(err))
		} else {
			defer sw.Stop()
		}
	}

	_, err := p.Run()
	return err
}
