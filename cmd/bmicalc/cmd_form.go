package main

import (
	"context"
	"reflect"

	"bmicalc/cmd/bmicalc/ui"
	"bmicalc/internal/config"
	"bmicalc/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runForm starts the interactive form and keeps it in sync with the config
// file until the user quits.
func runForm(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	initLogging(cfg, path)
	defer logging.CloseAll()
	logging.Boot("starting form (config=%s, theme=%s, strict=%v)", path, cfg.UI.Theme, cfg.Engine.StrictNumbers)

	p := tea.NewProgram(ui.NewFormModel(ui.OptionsFromConfig(cfg)), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	current := cfg.Logging
	watcher, err := config.NewWatcher(path, func(next *config.Config) {
		if !reflect.DeepEqual(current, next.Logging) {
			current = next.Logging
			if err := logging.Reconfigure(next.Logging.Settings()); err != nil {
				logging.Get(logging.CategoryConfig).Error("logging reconfigure failed: %v", err)
			}
		}
		p.Send(ui.ConfigReloadedMsg{Config: next})
	})
	if err != nil {
		logging.Get(logging.CategoryConfig).Warn("config watcher disabled: %v", err)
	} else {
		defer watcher.Stop()
		if err := watcher.Start(ctx); err != nil {
			logging.Get(logging.CategoryConfig).Warn("config watcher disabled: %v", err)
		}
	}

	_, err = p.Run()
	return err
}
