package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/textkit/dedent"
	"github.com/wippyai/textkit/render"
	"github.com/wippyai/textkit/sink"
)

func main() {
	var (
		mode        = flag.String("mode", "dedent", "Operation: dedent, quote, join")
		tabWidth    = flag.Int("tabwidth", dedent.DefaultTabWidth, "Tab stop width")
		indent      = flag.Int("indent", -1, "Columns to strip (default: measured minimum)")
		delim       = flag.String("delim", ", ", "Join delimiter")
		lastDelim   = flag.String("last-delim", "", "Join delimiter before the final item (default: same as -delim)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		render.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*tabWidth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*mode, flag.Arg(0), *tabWidth, *indent, *delim, *lastDelim); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(mode, file string, tabWidth, indent int, delim, lastDelim string) error {
	var data []byte
	var err error
	if file == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	text := string(data)
	out := sink.NewWriter(os.Stdout)

	switch mode {
	case "dedent":
		target := indent
		if target < 0 {
			target = dedent.MinIndent(text, tabWidth)
		}
		render.Logger().Debug("dedenting",
			zap.Int("target", target),
			zap.Int("tabwidth", tabWidth),
			zap.Int("bytes", len(text)))
		return render.Plain(out, dedent.Unindent(text, target, tabWidth))

	case "quote":
		if err := render.Literal(out, strings.TrimSuffix(text, "\n")); err != nil {
			return err
		}
		return render.Plain(out, "\n")

	case "join":
		if lastDelim == "" {
			lastDelim = delim
		}
		var items []any
		for _, line := range strings.Split(text, "\n") {
			if line != "" {
				items = append(items, line)
			}
		}
		if err := render.Join(out, items, delim, lastDelim); err != nil {
			return err
		}
		return render.Plain(out, "\n")

	default:
		fmt.Fprintln(os.Stderr, "Usage: textkit [-mode dedent|quote|join] [file]")
		fmt.Fprintln(os.Stderr, "       textkit -mode dedent [-indent n] [-tabwidth n] [file]")
		fmt.Fprintln(os.Stderr, "       textkit -mode join [-delim s] [-last-delim s] [file]")
		fmt.Fprintln(os.Stderr, "       textkit -i  (interactive mode)")
		return fmt.Errorf("unknown mode %q", mode)
	}
}
