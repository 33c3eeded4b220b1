package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	cgf "github.com/HOKORISAMA/Triangle-Engine-Tools"
	"github.com/HOKORISAMA/Triangle-Engine-Tools/config"
	"github.com/HOKORISAMA/Triangle-Engine-Tools/target"
	"github.com/HOKORISAMA/Triangle-Engine-Tools/telemetry"
)

// CLI are the cli parameters for the cgf binary
type CLI struct {
	Archive   string           `arg:"" name:"archive" help:"Path to the CGF archive." type:"existingfile"`
	List      bool             `short:"l" help:"List contents of the archive."`
	Extract   []string         `short:"e" placeholder:"OUTPUT,INPUT" help:"Extract the entry named INPUT to a file named OUTPUT."`
	All       bool             `short:"a" help:"Extract all entries from the archive."`
	Output    string           `short:"o" default:"." help:"Output directory for extraction."`
	Overwrite bool             `short:"O" help:"Overwrite existing files in the output directory."`
	Metrics   bool             `short:"M" optional:"" default:"false" help:"Print telemetry data to log after extraction."`
	Verbose   bool             `short:"v" optional:"" help:"Verbose logging."`
	Version   kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
}

// Run the entrypoint into the cgf extraction cli
func Run(version, commit, date string) {
	ctx := context.Background()
	var cli CLI
	kong.Parse(&cli,
		kong.Description("An extraction utility for Triangle engine CGF archives"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// setup telemetry hook
	metricsToLog := func(ctx context.Context, td *telemetry.Data) {
		if cli.Metrics {
			logger.Info("extraction finished", "telemetry", td)
		}
	}

	// process cli params
	cfg := config.NewConfig(
		config.WithCreateDestination(true),
		config.WithLogger(logger),
		config.WithOverwrite(cli.Overwrite),
		config.WithTelemetryHook(metricsToLog),
	)

	// open archive directory
	archive, err := cgf.Open(cli.Archive, cfg)
	if err != nil {
		logger.Error("opening archive failed", "err", err)
		fmt.Fprintf(os.Stderr, "Failed to open %s\n", cli.Archive)
		os.Exit(1)
	}

	if cli.List {
		fmt.Printf("Contents of %s:\n", cli.Archive)
		for _, e := range archive.Entries {
			fmt.Printf("%s (%d bytes)\n", e.Name, e.Size)
		}
	}

	if len(cli.Extract) > 0 {
		if len(cli.Extract) != 2 {
			logger.Error("extract needs exactly two names", "usage", "--extract=OUTPUT,INPUT")
			os.Exit(1)
		}
		outputName, inputName := cli.Extract[0], cli.Extract[1]
		if entry, err := archive.Entry(inputName); err != nil {
			// a missing name skips this operation only
			fmt.Printf("File %s not found in the archive\n", inputName)
		} else if err := archive.Extract(ctx, entry, cli.Output, outputName, target.NewOS(), cfg); err != nil {
			log.Println(errors.Wrap(err, "error during extraction"))
			os.Exit(1)
		}
	}

	if cli.All {
		t := target.NewOS()
		for _, entry := range archive.Entries {
			if err := archive.Extract(ctx, entry, cli.Output, entry.Name, t, cfg); err != nil {
				log.Println(errors.Wrapf(err, "error during extraction of %s", entry.Name))
				os.Exit(1)
			}
		}
	}
}
