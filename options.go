package warp

// FitOption configures Fit.
//
// Example:
//
//	// Leave a 10% margin around the image.
//	info, err := warp.Fit(viewport, image, warp.WithPadding(0.9))
type FitOption func(*fitOptions)

// fitOptions holds optional configuration for Fit.
type fitOptions struct {
	padding float64
}

// defaultFitOptions returns the default fit options.
func defaultFitOptions() fitOptions {
	return fitOptions{
		padding: 1,
	}
}

// WithPadding multiplies the fitted scale by p. Values below 1 leave a
// margin; values above 1 let the image overflow the container.
func WithPadding(p float64) FitOption {
	return func(o *fitOptions) {
		o.padding = p
	}
}
