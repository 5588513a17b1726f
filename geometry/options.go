package geometry

import (
	"github.com/gorustyt/asr/common"
	"github.com/pkg/errors"
)

var White = common.Vec4{1, 1, 1, 1}

type config struct {
	attrs Attributes
	color common.Vec4
}

func newConfig(opts []Option) *config {
	cfg := &config{attrs: AttrUV, color: White}
	for _, o := range opts {
		o.set(cfg)
	}
	return cfg
}

// Option tunes the vertex channels a generator fills.
type Option interface {
	set(*config)
}

type option func(*config)

func (f option) set(cfg *config) {
	f(cfg)
}

// WithNormals adds the normal channel.
func WithNormals() Option {
	return option(func(cfg *config) {
		cfg.attrs |= AttrNormal
	})
}

// WithoutUV drops the texture coordinate channel.
func WithoutUV() Option {
	return option(func(cfg *config) {
		cfg.attrs &^= AttrUV
	})
}

// WithColor sets the initial vertex color (white by default).
func WithColor(c common.Vec4) Option {
	return option(func(cfg *config) {
		cfg.color = c
	})
}

// requireSegments panics when a segment count is below its minimum.
func requireSegments(shape, name string, got, least int) {
	if got < least {
		panic(errors.Wrapf(ErrInvalidSegments, "%s: %s = %d, want >= %d", shape, name, got, least))
	}
}
