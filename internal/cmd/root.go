// Package cmd holds the root cobra command for pathobject
package cmd

import (
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vercel/pathobject/internal/cmdutil"
)

// RunWithArgs runs pathobject with the given command-line arguments and
// returns the process exit code.
func RunWithArgs(args []string, version string) int {
	return run(cmdutil.NewHelper(version), args)
}

func run(helper *cmdutil.Helper, args []string) int {
	root := getCmd(helper)
	root.SetArgs(args)
	root.SetOut(helper.Stdout)
	root.SetErr(helper.Stderr)

	execErr := root.Execute()
	if err := helper.Cleanup(); err != nil {
		fmt.Fprintf(helper.Stderr, "pathobject: %v\n", err)
	}

	exitErr := &cmdutil.Error{}
	if errors.As(execErr, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(helper.Stderr, "pathobject: %v\n", exitErr.Err)
		}
		return exitErr.ExitCode
	} else if execErr != nil {
		fmt.Fprintf(helper.Stderr, "pathobject error: %v\n", execErr)
		return 1
	}
	return 0
}

func getCmd(helper *cmdutil.Helper) *cobra.Command {
	var traceFile, heapFile, cpuprofileFile string
	cmd := &cobra.Command{
		Use:           "pathobject",
		Short:         "Take apart and rebuild file-system paths in POSIX or Windows syntax",
		Version:       helper.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeOutputFiles(helper, traceFile, heapFile, cpuprofileFile)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.PersistentFlags()
	helper.AddFlags(flags)
	flags.StringVar(&traceFile, "trace", "", "Specify a file to save a performance trace to")
	flags.StringVar(&heapFile, "heap", "", "Specify a file to save a pprof heap profile")
	flags.StringVar(&cpuprofileFile, "cpuprofile", "", "Specify a file to save a cpu profile")
	for _, name := range []string{"trace", "heap", "cpuprofile"} {
		if err := flags.MarkHidden(name); err != nil {
			// fail fast if we've misconfigured our flags
			panic(err)
		}
	}

	cmd.AddCommand(
		splitCmd(helper),
		splitAllCmd(helper),
		splitExtCmd(helper),
		splitDriveCmd(helper),
		splitUNCCmd(helper),
		normalizeCmd(helper),
		absCmd(helper),
		relpathCmd(helper),
		fnmatchCmd(helper),
		matchCmd(helper),
		globCmd(helper),
		findupCmd(helper),
		readCmd(helper),
		writeCmd(helper),
		configCmd(helper),
	)
	return cmd
}

func initializeOutputFiles(helper *cmdutil.Helper, traceFile, heapFile, cpuprofileFile string) error {
	if traceFile != "" {
		cleanup, err := createTraceFile(traceFile)
		if err != nil {
			return err
		}
		helper.RegisterCleanup(cleanup)
	}
	if heapFile != "" {
		cleanup, err := createHeapFile(heapFile)
		if err != nil {
			return err
		}
		helper.RegisterCleanup(cleanup)
	}
	if cpuprofileFile != "" {
		cleanup, err := createCpuprofileFile(cpuprofileFile)
		if err != nil {
			return err
		}
		helper.RegisterCleanup(cleanup)
	}
	return nil
}

type profileCleanup func() error

// Close implements io.Close for profileCleanup
func (pc profileCleanup) Close() error {
	return pc()
}

// To view a CPU trace, use "go tool trace [file]".
func createTraceFile(traceFile string) (profileCleanup, error) {
	f, err := os.Create(traceFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create trace file: %v", traceFile)
	}
	if err := trace.Start(f); err != nil {
		return nil, errors.Wrap(err, "failed to start tracing")
	}
	return func() error {
		trace.Stop()
		return f.Close()
	}, nil
}

// To view a heap trace, use "go tool pprof [file]" and type "top".
func createHeapFile(heapFile string) (profileCleanup, error) {
	f, err := os.Create(heapFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create heap file: %v", heapFile)
	}
	return func() error {
		if err := pprof.WriteHeapProfile(f); err != nil {
			// we don't care if we fail to close the file we just failed to write to
			_ = f.Close()
			return errors.Wrapf(err, "failed to write heap file: %v", heapFile)
		}
		return f.Close()
	}, nil
}

// To view a CPU profile, drop the file into https://speedscope.app.
func createCpuprofileFile(cpuprofileFile string) (profileCleanup, error) {
	f, err := os.Create(cpuprofileFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create cpuprofile file: %v", cpuprofileFile)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, errors.Wrap(err, "failed to start CPU profiling")
	}
	return func() error {
		pprof.StopCPUProfile()
		return f.Close()
	}, nil
}

// fields renders values on one line, quoted so that empty components
// remain visible.
func fields(values ...string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, " ")
}
