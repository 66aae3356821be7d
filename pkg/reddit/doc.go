// Package reddit provides an anonymous client for Reddit's public JSON
// endpoints and a paginator that turns a user's post and comment history
// into normalized content items.
//
// All requests share one rate-limited client; a fixed inter-request delay
// keeps the scrape within the usage policy of the unauthenticated API.
// Fetch failures are soft at the pagination boundary: collection stops and
// already gathered items are kept.
package reddit
