package llm

// CompleteOptions contains options for generating completions
type CompleteOptions struct {
	Model       string   // Model name/identifier
	Temperature float32  // Controls randomness (0.0 to 1.0)
	MaxTokens   int      // Maximum number of tokens to generate
	Stop        []string // Stop sequences
}

// Option is a function type to modify CompleteOptions
type Option func(*CompleteOptions)

// WithModel sets the model to use
func WithModel(model string) Option {
	return func(o *CompleteOptions) {
		o.Model = model
	}
}

// WithTemperature sets the sampling temperature
func WithTemperature(temp float32) Option {
	return func(o *CompleteOptions) {
		o.Temperature = temp
	}
}

// WithMaxTokens sets the maximum number of tokens to generate
func WithMaxTokens(tokens int) Option {
	return func(o *CompleteOptions) {
		o.MaxTokens = tokens
	}
}

// WithStop sets sequences where the model will stop generating
func WithStop(stop []string) Option {
	return func(o *CompleteOptions) {
		o.Stop = stop
	}
}

// DefaultOptions returns the default options
func DefaultOptions() *CompleteOptions {
	return &CompleteOptions{
		Temperature: 0.7,
		MaxTokens:   0, // No limit by default
	}
}
