// Package warp computes the perspective transforms used to overlay one
// image on another.
//
// # Overview
//
// A user drags four corner handles over a reference image. For every drag
// frame, warp estimates the homography that maps the overlay's natural
// rectangle onto those corners and encodes it as a CSS matrix3d() string:
//
//	corners := warp.DefaultCorners(640, 480)
//	corners.TopRight = warp.Pt(600, 40)
//
//	css, err := warp.ComputeMatrix3D(corners, 640, 480)
//	if err != nil {
//	    // errors.Is(err, warp.ErrSingularSystem): keep the previous transform
//	}
//
// An empty string means the corners are untouched and no transform is
// needed.
//
// # Components
//
//   - EstimateHomography: 8x8 linear solve for the transform coefficients
//   - IsValidQuadrilateral, AnalyzeQuadrilateral: convexity checks for handles
//   - InterpolateCorners: animated reset between corner sets
//   - Fit: aspect-preserving placement of an image in a viewport
//   - Tracker: last-good-transform policy for a stream of updates
//
// # Coordinate System
//
// Pixel coordinates, origin at top-left, X right, Y down.
//
// # Concurrency
//
// All functions are pure over value types and safe to call from any
// goroutine. Tracker holds state and has a single owner.
//
// warp does not resample pixels; applying the transform is the renderer's job.
package warp
