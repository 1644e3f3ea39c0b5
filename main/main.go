// Command tcsave decodes save files and prints a YAML summary of each.
// Files ending in .zst are unpacked first. With --memprofile it doubles
// as a profiling harness for the decoder.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/tcsave/pkg/save"
)

func main() {
	var (
		unsafeStrings = pflag.Bool("unsafe-strings", false, "let decoded text alias the file buffer")
		verbose       = pflag.BoolP("verbose", "v", false, "log decoder debug records to stderr")
		memprofile    = pflag.String("memprofile", "", "write a heap profile to `file` after decoding")
		repeat        = pflag.IntP("repeat", "n", 1, "decode every file `N` times")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: tcsave [flags] FILE...\n\nflags:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() == 0 || *repeat < 1 {
		pflag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	codec := save.New(save.Options{UnsafeStrings: *unsafeStrings, Logger: logger})

	if *memprofile != "" {
		runtime.MemProfileRate = 1
	}

	summaries := make([]Summary, pflag.NArg())
	var g errgroup.Group
	for i, path := range pflag.Args() {
		g.Go(func() error {
			data, err := readSave(path)
			if err != nil {
				return err
			}
			var rec save.Record
			for range *repeat {
				if rec, err = codec.Decode(data); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			s, err := Summarize(rec)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			s.File = path
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("decode failed", slog.Any("err", err))
		os.Exit(1)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(summaries); err != nil {
		logger.Error("write summary", slog.Any("err", err))
		os.Exit(1)
	}
	_ = enc.Close()

	if *memprofile != "" {
		if err := writeHeapProfile(*memprofile); err != nil {
			logger.Error("write heap profile", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return pprof.WriteHeapProfile(f)
}
