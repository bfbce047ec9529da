package exprcalc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Session drives read-eval-print over a pair of streams. Output goes to an
// injected writer so transcripts can be captured in tests.
type Session struct {
	out io.Writer
	log *zap.Logger

	// Prompt prints "> " before each read. Off by default so batch output
	// stays clean.
	Prompt bool
}

func NewSession(out io.Writer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{out: out, log: log}
}

// Run reads lines until EOF or the "quit" sentinel. Parse failures and
// evaluation failures are reported on the output stream and never end the
// session.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		if s.Prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" {
			s.log.Debug("quit sentinel read")
			break
		}
		if line == "" {
			continue
		}
		s.evalLine(line)
	}
	return scanner.Err()
}

// EvalAll evaluates every non-blank line of the input in order. Malformed
// lines are reported and skipped; the batch always runs to the end.
func (s *Session) EvalAll(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	lines := lo.Filter(strings.Split(string(b), "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	for _, line := range lines {
		s.evalLine(strings.TrimSpace(line))
	}
	return nil
}

func (s *Session) evalLine(line string) {
	expr, ok := Parse(line).Get()
	if !ok {
		s.log.Debug("parse failed", zap.String("line", line))
		fmt.Fprintln(s.out, "invalid expression")
		return
	}
	v, err := Evaluate(expr)
	if err != nil {
		s.log.Debug("evaluation failed", zap.String("expr", expr.String()), zap.Error(err))
		fmt.Fprintln(s.out, err.Error())
		return
	}
	fmt.Fprintf(s.out, "%s = %s\n", expr, formatValue(v))
}
