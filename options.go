package chatbot

// ConvertOptions holds options for markdown processing.
type ConvertOptions struct {
	Config *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithAttachmentLineLimit overrides the line count above which code
// blocks are extracted as attachments.
func WithAttachmentLineLimit(lines int) Option {
	return func(opts *ConvertOptions) {
		cfg := *opts.Config
		cfg.AttachmentLineLimit = lines
		opts.Config = &cfg
	}
}

// defaultConvertOptions returns the default processing options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
