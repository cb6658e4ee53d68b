package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mosaicmc/chatrender/internal/component"
	"github.com/mosaicmc/chatrender/internal/validate"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <message.json>",
		Short: "Check a message against the component schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readMessage(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			raw, err := component.Decode(data)
			if err != nil {
				return err
			}
			if _, err := validate.Component(raw); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	return cmd
}
