package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vercel/pathobject/internal/cmdutil"
	"github.com/vercel/pathobject/internal/filter"
	"github.com/vercel/pathobject/internal/pathobject"
)

func fnmatchCmd(helper *cmdutil.Helper) *cobra.Command {
	return &cobra.Command{
		Use:   "fnmatch PATTERN PATH...",
		Short: "Print the paths whose final component matches PATTERN",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			pattern := args[0]
			matched := 0
			for _, arg := range args[1:] {
				p := base.Flavor.New(arg)
				if p.FnMatch(pattern) {
					base.UI.Output(p.String())
					matched++
				}
			}
			if matched == 0 {
				return &cmdutil.Error{ExitCode: 1}
			}
			return nil
		},
	}
}

func matchCmd(helper *cmdutil.Helper) *cobra.Command {
	var include, exclude []string
	cmd := &cobra.Command{
		Use:   "match PATH...",
		Short: "Print the paths whose final component passes the include and exclude lists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			f, err := filter.ForSyntax(base.Flavor, include, exclude)
			if err != nil {
				return err
			}
			paths := make([]pathobject.Path, len(args))
			for i, arg := range args {
				paths[i] = base.Flavor.New(arg)
			}
			selected := f.Select(paths)
			for _, p := range selected {
				base.UI.Output(p.String())
			}
			if len(selected) == 0 {
				return &cmdutil.Error{ExitCode: 1}
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&include, "include", nil, "Glob a name must match (repeatable)")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "Glob a name must not match (repeatable)")
	return cmd
}

func globCmd(helper *cmdutil.Helper) *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "glob PATTERN...",
		Short: "Print the files matching each pattern, which may use **",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			dir := base.Flavor.New(root)
			if root == "" {
				if dir, err = base.Flavor.Cwd(); err != nil {
					return err
				}
			}
			for _, pattern := range args {
				matches, err := dir.Glob(pattern)
				if err != nil {
					return err
				}
				base.Logger.Debug("glob", "pattern", pattern, "matches", len(matches))
				for _, m := range matches {
					base.UI.Output(m.String())
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "Directory patterns are relative to (default the working directory)")
	return cmd
}
