package actson

// DefaultMaxDepth is the maximum combined nesting of objects, arrays, and
// pending object keys allowed on the mode stack unless overridden.
const DefaultMaxDepth = 2048

// Options configures a Parser. Use OptionsBuilder to construct one, or pass
// Option values directly to NewParser.
type Options struct {
	maxDepth  int
	streaming bool
}

// DefaultOptions returns the default parser configuration: max depth 2048,
// streaming disabled.
func DefaultOptions() Options {
	return Options{maxDepth: DefaultMaxDepth, streaming: false}
}

// MaxDepth returns the configured maximum mode-stack depth.
func (o Options) MaxDepth() int {
	return o.maxDepth
}

// Streaming returns whether streaming (multiple top-level values) is
// enabled.
func (o Options) Streaming() bool {
	return o.streaming
}

// OptionsBuilder builds an Options value fluently.
//
//	opts := actson.NewOptionsBuilder().
//		WithMaxDepth(16).
//		WithStreaming(true).
//		Build()
//	p := actson.NewParser(f, actson.WithOptions(opts))
type OptionsBuilder struct {
	options Options
}

// NewOptionsBuilder starts a builder pre-populated with the default
// options.
func NewOptionsBuilder() OptionsBuilder {
	return OptionsBuilder{options: DefaultOptions()}
}

// WithMaxDepth sets the maximum mode-stack depth.
func (b OptionsBuilder) WithMaxDepth(maxDepth int) OptionsBuilder {
	b.options.maxDepth = maxDepth
	return b
}

// WithStreaming enables or disables streaming mode. When enabled, the
// parser accepts a sequence of JSON values -- self-delineating ones
// (objects, arrays, strings, keywords) need no separator, and others (bare
// numbers) must be separated by whitespace or another value.
func (b OptionsBuilder) WithStreaming(streaming bool) OptionsBuilder {
	b.options.streaming = streaming
	return b
}

// Build returns the constructed Options.
func (b OptionsBuilder) Build() Options {
	return b.options
}

// Option configures a Parser at construction time, functional-options
// style.
type Option func(*Options)

// WithOptions replaces the parser's options wholesale, e.g. with one
// assembled via OptionsBuilder.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithMaxDepth sets the maximum mode-stack depth.
func WithMaxDepth(maxDepth int) Option {
	return func(dst *Options) { dst.maxDepth = maxDepth }
}

// WithStreaming enables or disables streaming mode.
func WithStreaming(streaming bool) Option {
	return func(dst *Options) { dst.streaming = streaming }
}
