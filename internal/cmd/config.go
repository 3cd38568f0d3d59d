package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vercel/pathobject/internal/cmdutil"
	"github.com/vercel/pathobject/internal/pathsyntax"
	"github.com/vercel/pathobject/internal/ui"
)

func configCmd(helper *cmdutil.Helper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the stored configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			c := base.Config
			base.UI.Output(fmt.Sprintf("%s %v", ui.Label("file:  "), c.Path()))
			base.UI.Output(fmt.Sprintf("%s %v", ui.Label("syntax:"), c.Syntax.Name()))
			base.UI.Output(fmt.Sprintf("%s %v", ui.Label("color: "), c.ColorMode))
			if !base.IO.FileExists(c.Path()) {
				base.UI.Output(ui.Dim("(config file does not exist, defaults apply)"))
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "set-syntax NAME",
		Short:     "Store the default path syntax",
		Args:      cobra.ExactArgs(1),
		ValidArgs: pathsyntax.Names,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			if err := base.Config.SetSyntax(base.IO, args[0]); err != nil {
				return err
			}
			base.LogInfo(fmt.Sprintf("default syntax set to %v in %v", args[0], base.Config.Path()))
			return nil
		},
	})
	return cmd
}
