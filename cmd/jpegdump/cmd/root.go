package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jpfielding/jpegdump/pkg/logging"
	"github.com/spf13/cobra"
)

func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	var logFile io.Closer
	cmd := &cobra.Command{
		Use:          "jpegdump <file>",
		Short:        "dump the marker segments of a JPEG / JPEG-LS file",
		Long:         "Prints the offset, name and decoded fields of every marker segment in a JPEG or JPEG-LS file. Use - to read stdin.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel, _ := cmd.Flags().GetString("log-level")
			logJSON, _ := cmd.Flags().GetBool("log-json")
			logPath, _ := cmd.Flags().GetString("log-file")

			// Parse log level
			var level slog.Level
			levelErr := level.UnmarshalText([]byte(strings.ToUpper(logLevel)))
			if levelErr != nil {
				level = slog.LevelInfo
			}

			var w io.Writer = os.Stderr
			if logPath != "" {
				f := logging.RotatingFile(logPath)
				logFile = f
				w = f
			}
			slog.SetDefault(logging.Logger(w, logJSON, level))

			if levelErr != nil {
				slog.WarnContext(ctx, "Invalid log level, defaulting to INFO", "level", logLevel, "error", levelErr)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile != nil {
				return logFile.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			strict, _ := cmd.Flags().GetBool("strict")
			return runDump(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), args[0], format, strict)
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.Bool("log-json", false, "Write log records as JSON")
	pf.String("log-file", "", "Write logs to a rotated file instead of stderr")
	f := cmd.Flags()
	f.StringP("format", "f", "text", "output format (text|json)")
	f.Bool("strict", false, "fail on a truncated segment instead of reading missing fields as zero")
	return cmd
}

func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Long:  "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), gitsha)
		},
	}
	return cmd
}
