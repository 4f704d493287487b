// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package supervisor builds the suture supervision tree that runs the
// dashboard process.
//
// The tree has a root supervisor with two child layers:
//
//	sentiment-dashboard
//	├── upstream-layer   bootstrap loader (initial location fetch, retried)
//	└── api-layer        HTTP server
//
// Services are small adapters in the services subpackage that translate a
// component's lifecycle into suture's Serve(ctx) contract. Supervisor
// events are logged through sutureslog, bridged onto the zerolog global
// logger via logging.NewSlogLogger.
package supervisor
