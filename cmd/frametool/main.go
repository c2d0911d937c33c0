package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/frametransform/logger"
	"github.com/xaionaro-go/frametransform/transform"
	"github.com/xaionaro-go/frametransform/types"
)

const operationInfo = "info"

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags] <%s|%s> <input.rgba> [output.rgba]\n",
			os.Args[0], operationInfo, strings.Join(transform.Names(), "|"))
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	var resolution types.Resolution
	pflag.Var(&resolution, "resolution", "frame resolution, e.g. 3840x2160 (alternative to --width and --height)")
	width := pflag.Uint32("width", 0, "frame width in pixels")
	height := pflag.Uint32("height", 0, "frame height in pixels")
	brightness := pflag.Int32("brightness", 0, "brightness delta for the 'brightness' operation, [-255..255]")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.SetDefault(func() logger.Logger {
		return l
	})
	defer belt.Flush(ctx)

	cfg, err := parseConfig(pflag.Args(), resolution, *width, *height, *brightness)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		pflag.Usage()
		os.Exit(1)
	}

	if err := run(ctx, cfg, os.Stdout); err != nil {
		l.Error(err)
		belt.Flush(ctx)
		os.Exit(1)
	}
}
