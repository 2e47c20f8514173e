// Package hkex implements the Hong Kong new listings source.
//
// Requests are authorized with an OAuth2 client-credentials token and the listings
// endpoint is paginated; every page request passes through the source's rate limiter.
package hkex
