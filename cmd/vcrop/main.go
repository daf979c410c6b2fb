// Package main provides the vcrop command, which crops one raw video frame
// without copying it inside the pipeline and writes the cropped area out.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/opd-ai/vcrop/crop"
	"github.com/opd-ai/vcrop/frame"
	"github.com/opd-ai/vcrop/pipeline"
	"github.com/opd-ai/vcrop/pixfmt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
)

// CLI configuration
type CLIConfig struct {
	inPath      string
	outPath     string
	size        string
	pixFmt      string
	geometry    string
	sliceHeight int
	bottomUp    bool
	lenient     bool
	digest      bool
	logLevel    string
	help        bool

	width  int
	height int
	format pixfmt.Format
}

// parseCLIFlags parses command-line flags into a configuration.
func parseCLIFlags(fs *flag.FlagSet, args []string) (*CLIConfig, error) {
	config := &CLIConfig{}

	fs.StringVar(&config.inPath, "in", "", "Raw input frame (- for stdin)")
	fs.StringVar(&config.outPath, "out", "", "Raw output frame (- for stdout)")
	fs.StringVar(&config.size, "size", "", "Input frame size as WIDTHxHEIGHT")
	fs.StringVar(&config.pixFmt, "pix-fmt", "yuv420p", "Input pixel format")
	fs.StringVar(&config.geometry, "crop", "", "Crop area as x:y:w:h (0 width or height extends to the edge)")
	fs.IntVar(&config.sliceHeight, "slice-height", 16, "Rows per slice when streaming the frame (0 for whole frame)")
	fs.BoolVar(&config.bottomUp, "bottom-up", false, "Stream slices bottom to top")
	fs.BoolVar(&config.lenient, "lenient", false, "Treat malformed crop geometry as the full frame")
	fs.BoolVar(&config.digest, "digest", false, "Print a BLAKE2b-256 digest of the cropped frame")
	fs.StringVar(&config.logLevel, "log-level", "warning", "Log level (debug, info, warning, error)")
	fs.BoolVar(&config.help, "help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return config, nil
}

// printUsage prints the usage information.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "vcrop - crop a raw video frame")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s -in FILE -out FILE -size WxH [options]\n", fs.Name())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  %s -in in.yuv -out out.yuv -size 1920x1080 -crop 100:50:640:480\n", fs.Name())
	fmt.Fprintf(w, "  %s -in in.rgb -out - -size 640x480 -pix-fmt rgb24 -crop 0:240:0:0 -digest\n", fs.Name())
}

// parseSize parses WIDTHxHEIGHT.
func parseSize(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid frame size %q: want WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid frame width %q: %w", parts[0], err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid frame height %q: %w", parts[1], err)
	}
	return w, h, nil
}

// validateCLIConfig validates the configuration and fills derived fields.
func validateCLIConfig(config *CLIConfig) error {
	if config.inPath == "" {
		return fmt.Errorf("input path cannot be empty")
	}
	if config.outPath == "" && !config.digest {
		return fmt.Errorf("output path cannot be empty unless -digest is set")
	}
	if config.sliceHeight < 0 {
		return fmt.Errorf("slice height cannot be negative")
	}

	w, h, err := parseSize(config.size)
	if err != nil {
		return err
	}
	config.width, config.height = w, h

	format, err := pixfmt.ParseFormat(config.pixFmt)
	if err != nil {
		return err
	}
	if !pixfmt.IsSupported(format) {
		return fmt.Errorf("pixel format %s cannot be cropped", format)
	}
	config.format = format

	if _, err := logrus.ParseLevel(config.logLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// run crops one frame according to config. The digest line, if requested,
// goes to report.
func run(config *CLIConfig, stdin io.Reader, stdout, report io.Writer) error {
	level, _ := logrus.ParseLevel(config.logLevel)
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	filter, err := crop.NewFilter(crop.Config{Geometry: config.geometry, Lenient: config.lenient, Logger: logger})
	if err != nil {
		return err
	}

	direction := frame.TopToBottom
	if config.bottomUp {
		direction = frame.BottomToTop
	}
	sink := pipeline.NewCollector()
	defer sink.Close()
	link := pipeline.NewLink(filter, sink, pipeline.Config{
		SliceHeight: config.sliceHeight,
		Direction:   direction,
		Logger:      logger,
	})

	if _, err := link.Configure(config.width, config.height, []pixfmt.Format{config.format}); err != nil {
		return err
	}

	in := stdin
	if config.inPath != "-" {
		f, err := os.Open(config.inPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	src, err := frame.ReadRaw(bufio.NewReader(in), config.format, config.width, config.height, 32)
	if err != nil {
		return fmt.Errorf("failed to read input frame: %w", err)
	}
	err = link.PushFrame(src)
	src.Release()
	if err != nil {
		return err
	}
	if !sink.Covered() {
		return fmt.Errorf("slices did not cover the cropped frame")
	}

	var writers []io.Writer
	hash, err := blake2b.New256(nil)
	if err != nil {
		return err
	}
	if config.digest {
		writers = append(writers, hash)
	}

	var outFile *os.File
	switch config.outPath {
	case "":
	case "-":
		writers = append(writers, stdout)
	default:
		outFile, err = os.Create(config.outPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		writers = append(writers, outFile)
	}

	out := bufio.NewWriter(io.MultiWriter(writers...))
	if err := frame.WriteRaw(out, sink.View()); err != nil {
		return fmt.Errorf("failed to write output frame: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output frame: %w", err)
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("failed to close output: %w", err)
		}
	}

	view := sink.View()
	if config.digest {
		fmt.Fprintf(report, "%dx%d %s blake2b-256=%s\n", view.Width, view.Height, view.Format, hex.EncodeToString(hash.Sum(nil)))
	}
	return nil
}

// main is the entry point for the crop tool.
func main() {
	fs := flag.NewFlagSet("vcrop", flag.ExitOnError)
	config, err := parseCLIFlags(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	if config.help {
		printUsage(os.Stdout, fs)
		os.Exit(0)
	}

	if err := validateCLIConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Use -help for usage information.\n")
		os.Exit(1)
	}

	if err := run(config, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Crop failed: %v\n", err)
		os.Exit(1)
	}
}
