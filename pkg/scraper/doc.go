// Package scraper ties the pieces together: it scrapes a Reddit user's
// post and comment history, runs the analysis passes, assembles the
// persona, and writes the text report.
//
// The run is synchronous and sequential. The only suspension points
// are the rate limiter's inter-request delays and the network calls
// themselves.
package scraper
