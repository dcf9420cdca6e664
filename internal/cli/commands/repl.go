package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/mulscan/pkg/scan"
	"github.com/spf13/cobra"
)

const replPrompt = "mulscan> "

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate memory lines interactively",
		Long: `Start an interactive session. Every line entered is scanned as its own
document and its sum is printed. Lines starting with a dot are commands;
type .help to list them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem(".help"),
			readline.PcItem(".quit"),
			readline.PcItem(".literal", readline.PcItem("on"), readline.PcItem("off")),
			readline.PcItem(".toggles", readline.PcItem("on"), readline.PcItem("off")),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "mulscan REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	session := newREPLSession(cmd.OutOrStdout(), cmd.ErrOrStderr(), cc.Cfg.ScanOptions())
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if session.handle(line) {
			return nil
		}
	}
}

// replSession evaluates REPL input lines.
type replSession struct {
	out    io.Writer
	errOut io.Writer
	opts   scan.Options
	count  int
}

func newREPLSession(out, errOut io.Writer, opts scan.Options) *replSession {
	return &replSession{out: out, errOut: errOut, opts: opts}
}

// handle processes one line and reports whether the session should end.
func (s *replSession) handle(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	if strings.HasPrefix(strings.TrimSpace(line), ".") {
		return s.handleDotCommand(strings.Fields(line))
	}

	s.count++
	doc := scan.Document{Name: fmt.Sprintf("line %d", s.count), Text: line}
	res := scan.Evaluate(doc, s.opts)
	_, _ = fmt.Fprintf(s.out, "%s%d\n", SumLinePrefix, res.Sum)
	return false
}

func (s *replSession) handleDotCommand(parts []string) bool {
	switch parts[0] {
	case ".quit", ".exit":
		return true
	case ".help":
		printREPLHelp(s.out)
	case ".literal":
		if on, ok := parseSwitch(parts); ok {
			s.opts.LiteralMarkers = on
			_, _ = fmt.Fprintf(s.out, "literal markers: %s\n", onOff(on))
		} else {
			_, _ = fmt.Fprintln(s.errOut, "Usage: .literal on|off")
		}
	case ".toggles":
		if on, ok := parseSwitch(parts); ok {
			s.opts.IgnoreToggles = !on
			_, _ = fmt.Fprintf(s.out, "toggles: %s\n", onOff(on))
		} else {
			_, _ = fmt.Fprintln(s.errOut, "Usage: .toggles on|off")
		}
	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", parts[0])
	}
	return false
}

func parseSwitch(parts []string) (bool, bool) {
	if len(parts) != 2 {
		return false, false
	}
	switch strings.ToLower(parts[1]) {
	case "on":
		return true, true
	case "off":
		return false, true
	}
	return false, false
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func printREPLHelp(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Commands:")
	_, _ = fmt.Fprintln(w, "  .help            Show this help")
	_, _ = fmt.Fprintln(w, "  .literal on|off  Match do()/don't() inside longer words")
	_, _ = fmt.Fprintln(w, "  .toggles on|off  Honour or ignore do()/don't()")
	_, _ = fmt.Fprintln(w, "  .quit            Exit")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Any other line is scanned and its sum printed.")
}
