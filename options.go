package compresspickle

import (
	"fmt"
	"log/slog"
)

// Option configures a single save or load call.
type Option interface {
	apply(*config)
}

// config holds the per-call configuration. A fresh one is built for
// every facade call; nothing is shared between calls.
type config struct {
	codec      Codec
	scheme     Scheme
	level      int
	levelSet   bool
	flags      int
	flagsSet   bool
	policy     ExtensionPolicy
	rewriteExt bool
	member     string
	logger     *slog.Logger
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*config)

var _ Option = optionFunc(nil)

func (f optionFunc) apply(c *config) { f(c) }

// newConfig applies opts over the defaults. Extension rewriting only
// exists for path-based calls; bytes and stream calls have no
// filename to rewrite.
func newConfig(pathBased bool, opts []Option) *config {
	cfg := &config{
		scheme:     SchemeInfer,
		policy:     PolicyRaise,
		rewriteExt: pathBased,
	}
	for _, o := range opts {
		o.apply(cfg)
	}
	if !pathBased {
		cfg.rewriteExt = false
	}
	return cfg
}

func (c *config) enc() Codec {
	if c.codec != nil {
		return c.codec
	}
	return CBORCodec{}
}

func (c *config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

func (c *config) openFlag(def int) int {
	if c.flagsSet {
		return c.flags
	}
	return def
}

// validate rejects options the resolved scheme cannot honor. The
// option set is a closed enumeration; nothing is silently forwarded.
func (c *config) validate(d *descriptor) error {
	if c.levelSet && !d.hasLevels {
		return fmt.Errorf("%w: %q has no compression levels", ErrUnsupportedOption, d.name)
	}
	if c.member != "" && !d.archive {
		return fmt.Errorf("%w: %q is not an archive scheme, no member name applies", ErrUnsupportedOption, d.name)
	}
	return nil
}

// WithCodec selects the serialization codec for this call.
// The default is CBORCodec.
func WithCodec(c Codec) Option {
	return optionFunc(func(cfg *config) {
		cfg.codec = c
	})
}

// WithScheme requests a concrete compression scheme on a path-based
// call, overriding extension inference.
func WithScheme(s Scheme) Option {
	return optionFunc(func(cfg *config) {
		cfg.scheme = s
	})
}

// WithLevel sets the compression level. Levels are scheme-specific
// (gzip 1-9, zstd 1-22, lz4 1-9, brotli 0-11, bzip2 1-9); schemes
// without levels reject the option with ErrUnsupportedOption.
func WithLevel(level int) Option {
	return optionFunc(func(cfg *config) {
		cfg.level = level
		cfg.levelSet = true
	})
}

// WithOpenFlags overrides the os.OpenFile flags used for path-based
// calls, replacing the scheme's default mode.
func WithOpenFlags(flags int) Option {
	return optionFunc(func(cfg *config) {
		cfg.flags = flags
		cfg.flagsSet = true
	})
}

// WithExtensionPolicy sets the behavior when inference meets an
// unrecognized extension. The default is PolicyRaise.
func WithExtensionPolicy(p ExtensionPolicy) Option {
	return optionFunc(func(cfg *config) {
		cfg.policy = p
	})
}

// WithNoExtensionRewrite keeps the supplied path untouched instead of
// normalizing it to the scheme's canonical extension.
func WithNoExtensionRewrite() Option {
	return optionFunc(func(cfg *config) {
		cfg.rewriteExt = false
	})
}

// WithArchiveMember names the single member written to or read from
// an archive scheme, replacing the name derived from the filename.
// Non-archive schemes reject it with ErrUnsupportedOption.
func WithArchiveMember(name string) Option {
	return optionFunc(func(cfg *config) {
		cfg.member = name
	})
}

// WithLogger sets the logger that receives the PolicyWarn warning.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(cfg *config) {
		cfg.logger = l
	})
}
