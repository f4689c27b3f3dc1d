package cmd

import (
	"fmt"
	"path/filepath"

	"stitch/pkg/logging"
	"stitch/pkg/stitch"
	"stitch/pkg/version"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootLogger is the logger handed to Execute; --debug replaces it with a
// development logger before the run starts.
var rootLogger *zap.Logger

// RootCmd is the base command. Stitch has a single operation, so the root
// command carries it directly instead of a subcommand.
var RootCmd = &cobra.Command{
	Use:   "stitch",
	Short: "Stitch concatenates a directory's files into one text document",
	Long: `Stitch reads every regular file directly inside a source directory and
writes them, in filename order, into a single delimited text document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if debug {
			if err := logging.Setup(true, "Stitch", version.Version); err != nil {
				return fmt.Errorf("failed to set up debug logging: %w", err)
			}
			rootLogger = logging.Logger
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := cmd.Flags().GetString("source")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		stArgs := stitch.Arguments{
			SourceDir: source,
			Output:    output,
		}
		fsys := filesystemFor(&stArgs, rootLogger)

		return stitch.Run(stArgs, fsys, cmd.OutOrStdout(), rootLogger)
	},
}

// Execute runs the root command with the provided logger.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

// filesystemFor picks the osfs root for the configured paths. Relative paths
// run against the working directory so they appear verbatim in output
// headers; once either path is absolute, both are resolved absolute and the
// filesystem is rooted at /.
func filesystemFor(args *stitch.Arguments, logger *zap.Logger) billy.Filesystem {
	if !filepath.IsAbs(args.SourceDir) && !filepath.IsAbs(args.Output) {
		return osfs.New(".")
	}

	if abs, err := filepath.Abs(args.SourceDir); err == nil {
		args.SourceDir = abs
	} else if logger != nil {
		logger.Warn("Failed to resolve source path", zap.String("path", args.SourceDir), zap.Error(err))
	}
	if abs, err := filepath.Abs(args.Output); err == nil {
		args.Output = abs
	} else if logger != nil {
		logger.Warn("Failed to resolve output path", zap.String("path", args.Output), zap.Error(err))
	}
	return osfs.New("/")
}

func init() {
	RootCmd.Flags().StringP("source", "s", stitch.DefaultSourceDir, "directory whose files are stitched together")
	RootCmd.Flags().StringP("output", "o", stitch.DefaultOutput, "path of the stitched output document")
	RootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}
