package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mosaicmc/chatrender/internal/component"
	"github.com/mosaicmc/chatrender/internal/htmlout"
	"github.com/mosaicmc/chatrender/internal/term"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "render <message.json>",
		Short: "Validate a message and print its rendered form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolveConfig()
			if err != nil {
				return err
			}
			if format != "" {
				cfg.Output = format
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			renderer, err := buildRenderer(cfg, log)
			if err != nil {
				return err
			}

			data, err := readMessage(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			raw, err := component.Decode(data)
			if err != nil {
				return err
			}
			node, err := renderer.RenderRaw(raw)
			if err != nil {
				return err
			}

			switch cfg.Output {
			case "text":
				fmt.Fprintln(cmd.OutOrStdout(), node.PlainText())
			case "html":
				fmt.Fprintln(cmd.OutOrStdout(), htmlout.Encode(node))
			case "ansi", "":
				fmt.Fprintln(cmd.OutOrStdout(), term.Painter{ShowTooltips: true}.Paint(node))
			default:
				return fmt.Errorf("unknown output format %q", cfg.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, ansi or html (overrides config)")

	return cmd
}
