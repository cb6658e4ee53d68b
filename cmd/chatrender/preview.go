package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mosaicmc/chatrender/internal/tui"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <message.json>",
		Short: "Interactively preview a message with live obfuscation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolveConfig()
			if err != nil {
				return err
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			renderer, err := buildRenderer(cfg, log)
			if err != nil {
				return err
			}

			interval := time.Duration(cfg.ObfuscationIntervalMS) * time.Millisecond
			model := tui.NewModel(args[0], renderer, interval)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	return cmd
}
