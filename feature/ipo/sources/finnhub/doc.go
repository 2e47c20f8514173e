// Package finnhub implements the US IPO calendar source backed by the Finnhub API.
//
// A fetch issues one GET /calendar/ipo request covering today minus LookbackDays to
// today plus LookaheadDays, authenticated with a static token.
package finnhub
