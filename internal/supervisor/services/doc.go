// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package services contains suture.Service adapters for the components
// the supervisor tree runs.
//
// HTTPServerService wraps the chi-based HTTP server and turns context
// cancellation into a bounded graceful shutdown. BootstrapService runs
// the one-time initial state load against the review API, letting the
// supervisor retry it with backoff until the upstream is reachable.
package services
