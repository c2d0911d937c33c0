package main

import (
	"fmt"

	"github.com/xaionaro-go/frametransform/types"
)

type config struct {
	Operation  string
	InputPath  string
	OutputPath string
	Resolution types.Resolution
	Brightness int32
}

func parseConfig(
	args []string,
	resolution types.Resolution,
	width, height uint32,
	brightness int32,
) (config, error) {
	if len(args) < 2 || len(args) > 3 {
		return config{}, fmt.Errorf("expected 2 or 3 arguments, but got %d", len(args))
	}

	if width != 0 || height != 0 {
		if resolution != (types.Resolution{}) && resolution != (types.Resolution{Width: width, Height: height}) {
			return config{}, fmt.Errorf("--resolution %s contradicts --width %d --height %d", resolution, width, height)
		}
		resolution = types.Resolution{Width: width, Height: height}
	}
	if resolution == (types.Resolution{}) {
		return config{}, fmt.Errorf("the frame resolution is not set, use --width and --height or --resolution")
	}

	cfg := config{
		Operation:  args[0],
		InputPath:  args[1],
		Resolution: resolution,
		Brightness: brightness,
	}
	if len(args) == 3 {
		cfg.OutputPath = args[2]
	}
	return cfg, nil
}
