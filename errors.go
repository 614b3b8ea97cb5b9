package warp

import "errors"

var (
	// ErrSingularSystem is returned when the corner correspondences do not
	// determine a unique projective transform, for example when every
	// destination corner lies on one line. Estimation errors also wrap
	// linalg.ErrSingular.
	ErrSingularSystem = errors.New("warp: singular system")

	// ErrAspectRatioViolation is returned by Fit when the computed draw
	// rectangle no longer has the image's aspect ratio. It signals an
	// arithmetic regression, not bad input.
	ErrAspectRatioViolation = errors.New("warp: aspect ratio integrity violation")

	// ErrInvalidSize is returned for non-positive or non-finite dimensions.
	ErrInvalidSize = errors.New("warp: invalid size")

	// ErrInvalidPadding is returned for a non-positive or non-finite padding factor.
	ErrInvalidPadding = errors.New("warp: invalid padding")
)
