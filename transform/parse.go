package transform

import (
	"fmt"
	"strings"
)

const (
	NameProcess    = "process"
	NameGrayscale  = "grayscale"
	NameBrightness = "brightness"
)

// Names lists what Parse accepts.
func Names() []string {
	return []string{NameProcess, NameGrayscale, NameBrightness}
}

// Parse returns the transformer called name. brightness is used
// only by NameBrightness.
func Parse(name string, brightness int32) (Abstract, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameProcess:
		return NewDownscale(), nil
	case NameGrayscale:
		return NewGrayscale(), nil
	case NameBrightness:
		return NewBrightness(brightness), nil
	default:
		return nil, fmt.Errorf("unknown transform '%s', expected one of: %s", name, strings.Join(Names(), ", "))
	}
}
