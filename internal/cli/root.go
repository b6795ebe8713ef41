// Package cli implements the noisegen command.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/cwbudde/algo-noise/internal/config"
	"github.com/cwbudde/algo-noise/internal/observability"
	"github.com/cwbudde/algo-noise/internal/playback"
)

// Version is the application version, set at build time with
// -ldflags "-X github.com/cwbudde/algo-noise/internal/cli.Version=1.0.0".
var Version = "dev"

// speakerBuffer is the device buffer length; longer buffers start slower
// but tolerate scheduling hiccups.
const speakerBuffer = 100 * time.Millisecond

// Dependencies are the side-effecting collaborators of the command.
type Dependencies struct {
	// OpenPlayer opens the audio sink. It is only called when playback is
	// requested.
	OpenPlayer func(sampleRate int, logger *zap.Logger) (playback.Player, error)
	// LogOutput receives console log output. Level colors are only used on a
	// terminal unless logger.color says otherwise.
	LogOutput zapcore.WriteSyncer
}

// DefaultDependencies opens the system speaker and logs to stderr.
func DefaultDependencies() Dependencies {
	return Dependencies{
		OpenPlayer: func(sampleRate int, logger *zap.Logger) (playback.Player, error) {
			return playback.OpenSpeaker(sampleRate, speakerBuffer, logger)
		},
		LogOutput: os.Stderr,
	}
}

// NewRootCommand builds the noisegen command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	v := config.NewViper()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "noisegen <white|pink|brown|blue|gray>",
		Short: "Generate various types of noise audio files",
		Long: "noisegen synthesizes white, pink, brown, blue or gray noise and writes it\n" +
			"to a 16-bit WAV file, plays it, and/or prints a linear spectrum chart.\n\n" +
			"Noise types: " + strings.Join(typeNames(), ", "),
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     typeNames(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			if len(args) == 1 {
				v.Set("noise.type", args[0])
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			// 0 means unset in config files; on the command line it is a mistake.
			if cmd.Flags().Changed("frequency") && !cfg.HasFrequency() {
				return fmt.Errorf("%w: --frequency must be > 0", config.ErrInvalid)
			}

			logger, closeLog := observability.NewLogger(cfg.Logger, deps.LogOutput)
			defer func() {
				if err := closeLog(); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "Error: closing log file:", err)
				}
			}()

			r := &runner{
				cfg:    cfg,
				logger: logger,
				stdout: cmd.OutOrStdout(),
				open:   deps.OpenPlayer,
			}
			if err := r.run(cmd.Context()); err != nil {
				logger.Error("Command execution failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./noisegen.yaml)")
	flags.StringP("output", "o", "", "output WAV file path (optional if --play or --fft is used)")
	flags.BoolP("play", "p", false, "play the audio (optional if --output or --fft is used)")
	flags.Bool("fft", false, "show FFT of audio (optional if --output or --play is used)")
	flags.Float64P("duration", "d", 5, "duration in seconds")
	flags.IntP("sample-rate", "s", 44100, "sample rate in Hz")
	flags.Float64P("frequency", "f", 0, "custom center frequency for gray noise in Hz")
	flags.Int64("seed", 0, "random seed for reproducible output (0 picks a random seed)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("log-file", "", "additional rotating JSON log file")
	flags.String("log-color", config.ColorAuto, "color console log levels (auto, always, never)")

	bindFlags(v, cmd, map[string]string{
		"output.path":       "output",
		"output.play":       "play",
		"output.fft":        "fft",
		"noise.duration":    "duration",
		"noise.sample_rate": "sample-rate",
		"noise.frequency":   "frequency",
		"noise.seed":        "seed",
		"logger.level":      "log-level",
		"logger.format":     "log-format",
		"logger.file":       "log-file",
		"logger.color":      "log-color",
	})

	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %q: %v", name, err))
		}
	}
}

func typeNames() []string {
	types := noise.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

// Execute runs the command with process-level dependencies and exits
// non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCommand(DefaultDependencies())
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
