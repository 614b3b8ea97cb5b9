package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/warp"
)

var errSyntax = errors.New("invalid syntax")

// parseSize parses "WxH".
func parseSize(s string) (warp.Rect, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return warp.Rect{}, fmt.Errorf("%w: %q, want WxH", errSyntax, s)
	}
	w, err := strconv.ParseFloat(ws, 64)
	if err != nil {
		return warp.Rect{}, fmt.Errorf("%w: width %q", errSyntax, ws)
	}
	h, err := strconv.ParseFloat(hs, 64)
	if err != nil {
		return warp.Rect{}, fmt.Errorf("%w: height %q", errSyntax, hs)
	}
	return warp.Rect{Width: w, Height: h}, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (warp.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return warp.Point{}, fmt.Errorf("%w: %q, want x,y", errSyntax, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return warp.Point{}, fmt.Errorf("%w: x %q", errSyntax, xs)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return warp.Point{}, fmt.Errorf("%w: y %q", errSyntax, ys)
	}
	return warp.Point{X: x, Y: y}, nil
}

// parseCorners parses four whitespace-separated points in ring order:
// top-left, top-right, bottom-right, bottom-left.
func parseCorners(s string) (warp.Corners, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return warp.Corners{}, fmt.Errorf("%w: got %d points, want 4", errSyntax, len(fields))
	}
	var pts [4]warp.Point
	for i, f := range fields {
		p, err := parsePoint(f)
		if err != nil {
			return warp.Corners{}, err
		}
		pts[i] = p
	}
	return warp.Corners{
		TopLeft:     pts[0],
		TopRight:    pts[1],
		BottomRight: pts[2],
		BottomLeft:  pts[3],
	}, nil
}
