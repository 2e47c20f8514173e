// Package utils provides common utility functions for the ipo-tracker application.
// It includes helpers for reading loosely typed upstream JSON values (numbers that
// arrive as strings, json.Number, or not at all) without panicking.
package utils
