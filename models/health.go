// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Health is the result of probing the backend REST endpoint.
type Health struct {
	// URL is the base URL that was probed.
	URL string
	// StatusCode is the HTTP status returned by the probe.
	StatusCode int
	// Latency is the round-trip time of the probe request.
	Latency time.Duration
	// CheckedAt is the moment the probe completed.
	CheckedAt time.Time
}
