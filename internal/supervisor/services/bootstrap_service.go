// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"

	"github.com/rutuja395/sentiment-pipelinev1/internal/logging"
)

// Bootstrapper loads the initial dashboard state from the review API.
// Satisfied by *dashboard.Controller.
type Bootstrapper interface {
	Initialize(ctx context.Context) error
}

// BootstrapService runs the one-time initial state load under supervision.
//
// The dashboard can serve its page before the location list has loaded,
// so bootstrap runs as a supervised service rather than blocking startup:
// a failed load returns an error and suture retries it with backoff, and
// a successful load returns ErrDoNotRestart so the service is
// removed from the tree.
type BootstrapService struct {
	bootstrapper Bootstrapper
	name         string
}

// NewBootstrapService creates a supervised wrapper around the initial load.
func NewBootstrapService(b Bootstrapper) *BootstrapService {
	return &BootstrapService{
		bootstrapper: b,
		name:         "dashboard-bootstrap",
	}
}

// Serve implements suture.Service.
func (b *BootstrapService) Serve(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := b.bootstrapper.Initialize(ctx); err != nil {
		logging.Warn().
			Err(err).
			Str("service", b.name).
			Msg("Initial state load failed, will retry")
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	logging.Info().
		Str("service", b.name).
		Msg("Initial state loaded")
	return suture.ErrDoNotRestart
}

// String implements fmt.Stringer for supervisor logging.
func (b *BootstrapService) String() string {
	return b.name
}
