// SPDX-License-Identifier: EPL-2.0

// Command stereosig generates, converts and inspects stereo signal buffers.
//
// Usage:
//
//	stereosig [-config file] [-log-level level] <command> [options]
//
//	stereosig generate -freq 440 -amp 0.5 -frames 48000 -rate 48000 -o tone.json
//	stereosig downmix -rate 16000 -o mixed.wav input.ogg
//	stereosig downmix -pcm-format s16le -channels 2 -rate 8000 -o mixed.yaml input.pcm
//	stereosig info tone.json
//
// Output and input formats follow the file extension: .json and .yaml keep
// samples exactly, .wav stores 16-bit PCM.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/stereosig"
	"github.com/ik5/stereosig/formats/pcm"
	"github.com/ik5/stereosig/internal/analysis"
	"github.com/ik5/stereosig/internal/sigfile"
	"github.com/ik5/stereosig/signal"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("stereosig", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", DefaultConfigPath, "path to the YAML configuration file")
	logLevel := global.String("log-level", "", "log level: debug, info, warn, error (overrides the config file)")
	global.Usage = func() { usage(stderr, global) }

	if err := global.Parse(args); err != nil {
		return exitUsage
	}

	explicit := false
	global.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := LoadConfig(*configPath, explicit)
	if err != nil {
		fmt.Fprintf(stderr, "stereosig: %v\n", err)
		return exitError
	}
	if *logLevel != "" {
		cfg.LogLevel = LogLevel(*logLevel)
	}

	slog.SetDefault(newLogger(cfg.LogLevel, stderr))

	rest := global.Args()
	if len(rest) == 0 {
		usage(stderr, global)
		return exitUsage
	}

	var cmdErr error
	switch rest[0] {
	case "generate":
		cmdErr = runGenerate(cfg, rest[1:], stderr)
	case "downmix":
		cmdErr = runDownmix(cfg, rest[1:], stderr)
	case "info":
		cmdErr = runInfo(cfg, rest[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "stereosig: unknown command %q\n", rest[0])
		usage(stderr, global)
		return exitUsage
	}

	switch {
	case cmdErr == nil:
		return exitOK
	case errors.Is(cmdErr, errUsage), errors.Is(cmdErr, flag.ErrHelp):
		return exitUsage
	default:
		slog.Error("command failed", "command", rest[0], "err", cmdErr)
		return exitError
	}
}

func usage(w io.Writer, global *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: stereosig [options] <generate|downmix|info> [command options]\n\nOptions:\n")
	global.PrintDefaults()
}

// parse parses a subcommand's flags and validates the merged configuration.
func parse(fs *flag.FlagSet, args []string, cfg *Config) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(fs.Output(), "%s: %v\n", fs.Name(), err)
		return errUsage
	}

	return nil
}

func runGenerate(cfg Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.Generate.Frequency, "freq", cfg.Generate.Frequency, "sine frequency in Hz")
	fs.Float64Var(&cfg.Generate.Amplitude, "amp", cfg.Generate.Amplitude, "peak amplitude")
	fs.Float64Var(&cfg.Generate.Phase, "phase", cfg.Generate.Phase, "initial phase in radians")
	fs.IntVar(&cfg.Generate.Frames, "frames", cfg.Generate.Frames, "number of frames")
	fs.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "sample rate in Hz")
	out := fs.String("o", "", "output file (.json, .yaml, .wav)")

	if err := parse(fs, args, &cfg); err != nil {
		return err
	}
	if *out == "" {
		fmt.Fprintln(stderr, "generate: -o is required")
		return errUsage
	}

	g := cfg.Generate
	s := signal.FromGenerator(signal.Sine{
		Frequency:  g.Frequency,
		SampleRate: float64(cfg.SampleRate),
		Amplitude:  g.Amplitude,
		Phase:      g.Phase,
	}, g.Frames)

	if err := sigfile.Save(*out, s, cfg.SampleRate); err != nil {
		return err
	}

	slog.Info("signal generated",
		"output", *out,
		"frames", s.Len(),
		"frequency", g.Frequency,
		"sampleRate", cfg.SampleRate,
	)

	return nil
}

func runDownmix(cfg Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("downmix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Downmix.Rate, "rate", cfg.Downmix.Rate, "target rate for decoded input, 0 keeps the source rate; the input rate for raw PCM")
	fs.StringVar(&cfg.Downmix.PCMFormat, "pcm-format", cfg.Downmix.PCMFormat, "raw PCM sample format: "+formatList())
	fs.IntVar(&cfg.Downmix.Channels, "channels", cfg.Downmix.Channels, "raw PCM channel count")
	out := fs.String("o", "", "output file (.json, .yaml, .wav)")

	if err := parse(fs, args, &cfg); err != nil {
		return err
	}
	if *out == "" || fs.NArg() != 1 {
		fmt.Fprintln(stderr, "downmix: need -o and exactly one input file")
		return errUsage
	}
	in := fs.Arg(0)

	var (
		s    *signal.Stereo
		rate int
		err  error
	)
	if isRawPCM(in) {
		s, rate, err = downmixRaw(in, cfg)
	} else {
		s, rate, err = downmixDecoded(in, cfg.Downmix.Rate)
	}
	if err != nil {
		return err
	}

	if err := sigfile.Save(*out, s, rate); err != nil {
		return err
	}

	slog.Info("signal downmixed", "input", in, "output", *out, "frames", s.Len(), "sampleRate", rate)

	return nil
}

func isRawPCM(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pcm", ".raw":
		return true
	}
	return false
}

func downmixRaw(path string, cfg Config) (*signal.Stereo, int, error) {
	format, err := pcm.ParseFormat(cfg.Downmix.PCMFormat)
	if err != nil {
		return nil, 0, err
	}

	rate := cfg.Downmix.Rate
	if rate == 0 {
		rate = cfg.SampleRate
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	s, err := pcm.Downmix(f, format, cfg.Downmix.Channels)
	return s, rate, err
}

func downmixDecoded(path string, targetRate int) (*signal.Stereo, int, error) {
	reg := stereosig.NewRegistry()
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := reg.Decode(ext, f)
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	rate := src.SampleRate()
	if targetRate > 0 {
		rate = targetRate
	}

	s, err := stereosig.DownmixAt(src, targetRate)
	return s, rate, err
}

func formatList() string {
	names := make([]string, 0, len(pcm.Formats()))
	for _, f := range pcm.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func runInfo(cfg Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "sample rate used to print the duration")

	if err := parse(fs, args, &cfg); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "info: need exactly one input file")
		return errUsage
	}

	s, err := sigfile.Load(fs.Arg(0), stereosig.NewRegistry())
	if err != nil {
		return err
	}

	printSummary(stdout, fs.Arg(0), analysis.Summarize(s), cfg.SampleRate)

	return nil
}

func printSummary(w io.Writer, name string, sum analysis.Summary, sampleRate int) {
	fmt.Fprintf(w, "file:     %s\n", name)
	fmt.Fprintf(w, "frames:   %d\n", sum.Frames)
	fmt.Fprintf(w, "duration: %s at %d Hz\n", sum.Duration(sampleRate), sampleRate)
	for _, ch := range []struct {
		name string
		c    analysis.Channel
	}{{"left", sum.Left}, {"right", sum.Right}} {
		fmt.Fprintf(w, "%-9s peak %.4f  rms %.4f  dc %+.4f\n", ch.name+":", ch.c.Peak, ch.c.RMS, ch.c.DC)
	}

	if db := sum.PeakDBFS(); math.IsInf(db, -1) {
		fmt.Fprintln(w, "peak:     silent")
	} else {
		fmt.Fprintf(w, "peak:     %.2f dBFS\n", db)
	}
}
