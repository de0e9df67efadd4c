package chart

import "errors"

var (
	// ErrUnknownKind is returned for a chart kind with no renderer.
	ErrUnknownKind = errors.New("unknown chart kind")
	// ErrUnknownFormat is returned for an output format other than png or html.
	ErrUnknownFormat = errors.New("unknown chart format")
	// ErrNoData is returned when a chart has no launches to plot.
	ErrNoData = errors.New("no launches to plot")
)
