package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/cwbudde/algo-noise/dsp/spectrum"
	"github.com/cwbudde/algo-noise/internal/chart"
	"github.com/cwbudde/algo-noise/internal/config"
	"github.com/cwbudde/algo-noise/internal/playback"
	"github.com/cwbudde/algo-noise/internal/wavio"
	"github.com/cwbudde/algo-noise/stats/level"
)

type runner struct {
	cfg    *config.Config
	logger *zap.Logger
	stdout io.Writer
	open   func(sampleRate int, logger *zap.Logger) (playback.Player, error)
}

func (r *runner) run(ctx context.Context) error {
	typ, err := r.cfg.NoiseType()
	if err != nil {
		return err
	}
	n := r.cfg.Noise

	// The audio device takes a while to start, so open it before rendering.
	var player playback.Player
	if r.cfg.Output.Play {
		player, err = r.open(n.SampleRate, r.logger)
		if err != nil {
			return fmt.Errorf("playback: %w", err)
		}
		defer func() {
			if cerr := player.Close(); cerr != nil {
				r.logger.Warn("failed to close audio device", zap.Error(cerr))
			}
		}()
	}

	fields := []zap.Field{
		zap.Stringer("type", typ),
		zap.String("duration", fmt.Sprintf("%.2fs", n.Duration)),
		zap.Int("sample_rate", n.SampleRate),
	}
	if r.cfg.HasFrequency() {
		fields = append(fields, zap.Float64("frequency", n.Frequency))
	}
	if n.Seed != 0 {
		fields = append(fields, zap.Int64("seed", n.Seed))
	}
	r.logger.Info(fmt.Sprintf("Generating %s noise...", typ), fields...)

	samples, err := r.generator().Generate(typ, n.Duration, n.Frequency)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	sum := level.Summarize(samples)
	r.logger.Debug("Generated buffer",
		zap.Int("samples", sum.Length),
		zap.Float64("peak_db", sum.Peak_dB),
		zap.Float64("rms_db", sum.RMS_dB),
		zap.Float64("dc", sum.DC),
	)
	if sum.Clipped > 0 && r.cfg.Output.Path != "" {
		r.logger.Warn("Samples exceed full scale and will be clamped in the WAV file",
			zap.Int("clipped", sum.Clipped),
			zap.Float64("peak", sum.Peak),
		)
	}

	var profile spectrum.Profile
	g, gctx := errgroup.WithContext(ctx)

	if player != nil {
		g.Go(func() error {
			if err := player.Play(gctx, samples, n.SampleRate); err != nil {
				return fmt.Errorf("playback: %w", err)
			}
			return nil
		})
	}

	if path := r.cfg.Output.Path; path != "" {
		g.Go(func() error {
			r.logger.Info("Writing WAV file", zap.String("path", path))
			if err := wavio.WriteFile(path, samples, n.SampleRate); err != nil {
				return fmt.Errorf("write wav: %w", err)
			}
			r.logger.Info("Done!", zap.Int("samples", len(samples)), zap.String("path", path))
			return nil
		})
	}

	if r.cfg.Output.FFT {
		g.Go(func() error {
			p, err := spectrum.Analyze(samples, n.SampleRate)
			if err != nil {
				return fmt.Errorf("spectrum: %w", err)
			}
			profile = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if r.cfg.Output.FFT {
		return r.printSpectrum(profile)
	}
	return nil
}

func (r *runner) generator() *noise.Generator {
	coreOpts := []core.ProcessorOption{core.WithSampleRate(r.cfg.Noise.SampleRate)}
	if seed := r.cfg.Noise.Seed; seed != 0 {
		return noise.NewGeneratorWithOptions(coreOpts, noise.WithSeed(seed))
	}
	return noise.NewGeneratorWithOptions(coreOpts)
}

func (r *runner) printSpectrum(p spectrum.Profile) error {
	if _, err := fmt.Fprintln(r.stdout, "\nLinear FFT:"); err != nil {
		return err
	}
	if err := chart.Render(r.stdout, p.Bins, chart.DefaultHeight); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	_, err := fmt.Fprintf(r.stdout, "Frequency 0 to %d - linear\n", p.NyquistHz)
	return err
}
