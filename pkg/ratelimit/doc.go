// Package ratelimit provides rate limiting strategies for outbound requests.
//
// FixedInterval spaces consecutive requests by a minimum delay and is the
// default for scraping Reddit's public JSON endpoints. TokenBucket allows
// bursts up to a capacity refilled on a fixed period and backs the optional
// requests-per-minute configuration.
package ratelimit
