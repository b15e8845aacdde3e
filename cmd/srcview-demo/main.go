package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/srcview"
	"github.com/iw2rmb/srcview/source"
)

const sample = `// Step through tokens with → and ←.
let answer = 0x2A;
let again = answer + answer;
fn greet(name) {
	return "hello, " + name;
}
let oops = 0x + @ "unterminated
`

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(srcview.VersionTag())
		return
	}

	if err := run(*configPath, flag.Arg(0)); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(configPath, inputPath string) error {
	cfg, err := LoadConfig(configPath, os.LookupEnv)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	src := source.New(sample)
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		src = source.FromBytes(data)
	}
	log.WithFields(logrus.Fields{"bytes": src.Len(), "lines": src.Owner().LineCount()}).Info("loaded source")

	p := tea.NewProgram(newModel(src, cfg, cfg.renderer(), log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited")
		return err
	}
	return nil
}

// newLogger logs to cfg.LogFile, or nowhere: the terminal belongs to the UI.
func newLogger(cfg Config) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log_level: %w", err)
	}
	log.SetLevel(level)

	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return log, func() { _ = f.Close() }, nil
}
