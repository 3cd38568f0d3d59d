package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vercel/pathobject/internal/cmdutil"
	"github.com/vercel/pathobject/internal/pathobject"
	"golang.org/x/sync/errgroup"
)

func relpathCmd(helper *cmdutil.Helper) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "relpath PATH...",
		Short: "Print each path relative to the working directory, or to --from",
		Long: `Print relative paths.

With --from ORIGIN, each PATH is printed relative to ORIGIN. With --to
DESTINATION, the path leading from each PATH to DESTINATION is printed.
With neither, each PATH is printed relative to the working directory.
Paths on a different drive or share cannot be made relative and are
printed in absolute form.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from != "" && to != "" {
				return errors.New("--from and --to are mutually exclusive")
			}
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			logger := base.Logger.Named("relpath")

			results := make([]pathobject.Path, len(args))
			var g errgroup.Group
			for i, arg := range args {
				i, p := i, base.Flavor.New(arg)
				g.Go(func() error {
					var rel pathobject.Path
					var err error
					switch {
					case from != "":
						rel, err = p.RelPathFrom(from)
					case to != "":
						rel, err = p.RelPathTo(to)
					default:
						rel, err = p.RelPath()
					}
					if err != nil {
						return errors.Wrapf(err, "relpath %v", p)
					}
					logger.Trace("computed", "path", p.String(), "relpath", rel.String())
					results[i] = rel
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for _, rel := range results {
				base.UI.Output(rel.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Origin the paths are made relative to")
	cmd.Flags().StringVar(&to, "to", "", "Destination each path is made relative from")
	return cmd
}
