package rt

// SaveOption configures Canvas.Save and Canvas.Encode.
//
// Example:
//
//	// Write a 10x enlarged PNG
//	err := c.Save("out.png", rt.WithScale(10))
type SaveOption func(*saveOptions)

// saveOptions holds optional configuration for image export.
type saveOptions struct {
	scale int
}

// defaultSaveOptions returns the default export options.
func defaultSaveOptions() saveOptions {
	return saveOptions{scale: 1}
}

func applySaveOptions(opts []SaveOption) saveOptions {
	o := defaultSaveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithScale enlarges the exported image by an integer factor using
// nearest-neighbor sampling, so every canvas pixel becomes an n x n block.
// Factors below 1 are treated as 1.
func WithScale(n int) SaveOption {
	return func(o *saveOptions) {
		if n < 1 {
			n = 1
		}
		o.scale = n
	}
}
