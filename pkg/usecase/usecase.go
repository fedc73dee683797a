package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/formloom/formloom/pkg/service/generator"
	"github.com/formloom/formloom/pkg/service/gforms"
)

// PlatformFactory builds a forms platform client bound to one caller's
// credential. Each creation request carries its own credential, so clients
// are constructed per request rather than shared.
type PlatformFactory func(ctx context.Context, ts oauth2.TokenSource) (gforms.Service, error)

type UseCases struct {
	generator   generator.Service
	newPlatform PlatformFactory
}

type Option func(*UseCases)

// WithGenerator enables the prompt-to-schema operations. Without it,
// Generate and Edit return ErrGeneratorUnavailable.
func WithGenerator(svc generator.Service) Option {
	return func(uc *UseCases) {
		uc.generator = svc
	}
}

// WithPlatformFactory replaces the forms platform constructor (used by tests)
func WithPlatformFactory(f PlatformFactory) Option {
	return func(uc *UseCases) {
		uc.newPlatform = f
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{
		newPlatform: gforms.New,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
