// Package store is the gorm persistence layer for IPO stocks and sync runs.
//
// Stocks are keyed by the unique (symbol, market) index. Updates always write the
// complete mutable column set in a single statement.
package store
