// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package config provides layered configuration loading for the dashboard
// service using Koanf v2.
//
// Configuration is assembled from three sources, highest priority last:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML config file (CONFIG_PATH or well-known paths)
//  3. Environment variables (explicit mapping table, see envTransformFunc)
//
// The resulting Config is validated with go-playground/validator plus
// hand-written cross-field checks before it is handed to the rest of the
// application. Config is immutable after Load and safe for concurrent reads.
package config
