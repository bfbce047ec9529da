package main

import (
	"flag"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"exprcalc"
	"exprcalc/internal/logger"
)

func main() {
	flag.Parse()

	logger.Init(logger.Config{
		Level:      logger.LogLevel(envOrDefault("LOG_LEVEL", "warn")),
		Encoding:   envOrDefault("LOG_FORMAT", "console"),
		OutputPath: "stderr",
	})

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl()
			return
		}
		batch(os.Stdin)
		return
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		logger.Fatalf("open %s: %v", flag.Arg(0), err)
	}
	defer f.Close()
	batch(f)
}

func repl() {
	logger.Debugf("starting interactive session")
	session := exprcalc.NewSession(os.Stdout, logger.L())
	session.Prompt = true
	if err := session.Run(os.Stdin); err != nil {
		logger.Fatalf("read input: %v", err)
	}
}

func batch(r io.Reader) {
	session := exprcalc.NewSession(os.Stdout, logger.L())
	if err := session.EvalAll(r); err != nil {
		logger.Fatalf("read input: %v", err)
	}
}

func envOrDefault(key, def string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return def
}
