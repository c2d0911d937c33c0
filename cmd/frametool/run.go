package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/xaionaro-go/frametransform/frame"
	"github.com/xaionaro-go/frametransform/logger"
	"github.com/xaionaro-go/frametransform/transform"
)

func run(
	ctx context.Context,
	cfg config,
	stdout io.Writer,
) error {
	logger.Debugf(ctx, "reading '%s'...", cfg.InputPath)
	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", cfg.InputPath, err)
	}
	in := frame.NewRaw(data, cfg.Resolution.Width, cfg.Resolution.Height)

	if cfg.Operation == operationInfo {
		info := transform.GetFrameInfo(in.Data, in.Resolution.Width, in.Resolution.Height)
		if !info.IsConsistent() {
			logger.Warnf(ctx, "'%s' is %d bytes, but %s RGBA requires %d", cfg.InputPath, info.SizeBytes, info.Resolution(), info.ExpectedSizeBytes())
		}
		_, err := fmt.Fprintln(stdout, info.String())
		return err
	}

	t, err := transform.Parse(cfg.Operation, cfg.Brightness)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "applying %s to %s", t, in)
	out, err := t.Transform(ctx, in)
	if err != nil {
		return fmt.Errorf("unable to apply %s to '%s': %w", t, cfg.InputPath, err)
	}
	logger.Infof(ctx, "result: %s", out)

	return writeOutput(cfg.OutputPath, out, stdout)
}

func writeOutput(
	path string,
	out *frame.Processed,
	stdout io.Writer,
) error {
	if path == "" {
		if _, err := stdout.Write(out.Data); err != nil {
			return fmt.Errorf("unable to write the result: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, out.Data, 0644); err != nil {
		return fmt.Errorf("unable to write '%s': %w", path, err)
	}
	return nil
}
