package engine

// Option configures a validator built by Compose.
type Option func(*config)

type config struct {
	nullable  bool
	transform Transform
}

// Nullable controls whether a null input is accepted (true) or rejected
// with "null not permitted" (false, the default).
func Nullable(nullable bool) Option {
	return func(c *config) {
		c.nullable = nullable
	}
}

// WithTransform installs a transform that runs on non-null inputs before
// the rules. A nil transform is ignored.
//
// Example:
//
//	v := engine.Compose(rs, engine.WithTransform(xform.ToDate))
func WithTransform(t Transform) Option {
	return func(c *config) {
		c.transform = t
	}
}
