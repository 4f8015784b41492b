package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jpfielding/jpegdump/pkg/jpegdump"
	"github.com/jpfielding/jpegdump/pkg/logging"
	"github.com/jpfielding/jpegdump/pkg/util"
)

// runDump scans path ("-" for stdin) and writes the trace to out.
func runDump(ctx context.Context, stdin io.Reader, out io.Writer, path, format string, strict bool) error {
	var sink jpegdump.Sink
	switch format {
	case "text":
		sink = jpegdump.NewTextSink(out)
	case "json":
		sink = jpegdump.NewJSONSink(out)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	var in io.Reader
	switch path {
	case "-":
		in = stdin
	default:
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		in = f
	}

	if format == "text" {
		fmt.Fprintf(out, "Dumping JPEG file: %s\n", path)
		fmt.Fprintln(out, strings.Repeat("=", 77))
	}

	ctx = logging.AppendCtx(ctx, slog.String("file", path))
	digest := util.NewDigest(in)
	sc := jpegdump.NewScanner(digest, sink, &jpegdump.Options{Strict: strict})
	if err := sc.Scan(ctx); err != nil {
		return fmt.Errorf("dump %s: %w", path, err)
	}
	slog.InfoContext(ctx, "dump complete",
		"bytes", sc.Position(),
		"markers", sc.Markers(),
		"skipped", sc.Skipped(),
		"jpegls", sc.EntropyAware(),
		"md5", digest.Hex(),
		"uuid", digest.UUID(),
	)
	return nil
}
