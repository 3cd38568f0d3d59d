package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vercel/pathobject/internal/cmdutil"
)

func findupCmd(helper *cmdutil.Helper) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "findup NAME",
		Short: "Find NAME in the starting directory or the nearest parent containing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			dir := base.Flavor.New(from)
			if from == "" {
				if dir, err = base.Flavor.Cwd(); err != nil {
					return err
				}
			}
			found, ok, err := base.IO.Findup(dir, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return &cmdutil.Error{ExitCode: 1, Err: fmt.Errorf("%v not found in %v or any parent", args[0], dir)}
			}
			base.UI.Output(found.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Directory to start from (default the working directory)")
	return cmd
}

func readCmd(helper *cmdutil.Helper) *cobra.Command {
	return &cobra.Command{
		Use:   "read PATH",
		Short: "Copy the contents of PATH to stdout unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			data, err := base.IO.Bytes(base.Flavor.New(args[0]))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func writeCmd(helper *cmdutil.Helper) *cobra.Command {
	var appending, parents bool
	cmd := &cobra.Command{
		Use:   "write PATH",
		Short: "Copy stdin to PATH unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			p := base.Flavor.New(args[0])
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "reading stdin")
			}
			if parents {
				if err := base.IO.EnsureDir(p); err != nil {
					return err
				}
			}
			return base.IO.WriteBytes(p, data, appending)
		},
	}
	cmd.Flags().BoolVarP(&appending, "append", "a", false, "Append instead of replacing existing contents")
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "Create missing parent directories")
	return cmd
}
