package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vercel/pathobject/internal/cmdutil"
	"github.com/vercel/pathobject/internal/pathobject"
)

// pairCmd builds a command that prints the two halves fn returns for each
// argument, one argument per line.
func pairCmd(helper *cmdutil.Helper, use, short string, fn func(pathobject.Path) (pathobject.Path, string)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " PATH...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			for _, arg := range args {
				head, tail := fn(base.Flavor.New(arg))
				base.UI.Output(fields(head.String(), tail))
			}
			return nil
		},
	}
}

func splitCmd(helper *cmdutil.Helper) *cobra.Command {
	return pairCmd(helper, "split", "Split each path into its parent and final component", pathobject.Path.SplitPath)
}

func splitExtCmd(helper *cmdutil.Helper) *cobra.Command {
	return pairCmd(helper, "splitext", "Split each path into its stem and extension", pathobject.Path.SplitExt)
}

func splitDriveCmd(helper *cmdutil.Helper) *cobra.Command {
	return pairCmd(helper, "splitdrive", "Split each path into its drive and the rest", pathobject.Path.SplitDrive)
}

func splitUNCCmd(helper *cmdutil.Helper) *cobra.Command {
	return &cobra.Command{
		Use:   "splitunc PATH...",
		Short: "Split each path into its UNC mount point and the rest",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			for _, arg := range args {
				unc, rest, ok := base.Flavor.New(arg).SplitUNC()
				if !ok {
					return fmt.Errorf("%v paths have no UNC form", base.Flavor.Syntax().Name())
				}
				base.UI.Output(fields(unc.String(), rest))
			}
			return nil
		},
	}
}

func splitAllCmd(helper *cmdutil.Helper) *cobra.Command {
	return &cobra.Command{
		Use:   "splitall PATH...",
		Short: "Split each path into all of its components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			for _, arg := range args {
				base.UI.Output(fields(base.Flavor.New(arg).SplitAll()...))
			}
			return nil
		},
	}
}

func normalizeCmd(helper *cmdutil.Helper) *cobra.Command {
	var normcase bool
	cmd := &cobra.Command{
		Use:   "normalize PATH...",
		Short: "Collapse redundant separators and up-level references",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			for _, arg := range args {
				p := base.Flavor.New(arg).Normalize()
				if normcase {
					p = p.NormCase()
				}
				base.UI.Output(p.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&normcase, "case", false, "Also normalize case, on syntaxes that ignore it")
	return cmd
}

func absCmd(helper *cmdutil.Helper) *cobra.Command {
	var resolve, expand bool
	cmd := &cobra.Command{
		Use:   "abs PATH...",
		Short: "Print the absolute form of each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			failed := 0
			for _, arg := range args {
				p := base.Flavor.New(arg)
				if expand {
					if p, err = p.ExpandUser(); err != nil {
						base.LogWarning(arg, err)
						failed++
						continue
					}
					p = p.ExpandVars()
				}
				if resolve {
					p, err = p.RealPath()
				} else {
					p, err = p.Absolute()
				}
				if err != nil {
					base.LogWarning(arg, err)
					failed++
					continue
				}
				base.UI.Output(p.String())
			}
			if failed > 0 {
				// Each failure has already been reported.
				return &cmdutil.Error{ExitCode: 1}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&resolve, "real", false, "Resolve symbolic links")
	cmd.Flags().BoolVar(&expand, "expand", false, "Expand ~ and environment variables first")
	return cmd
}
