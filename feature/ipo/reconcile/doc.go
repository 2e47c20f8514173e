// Package reconcile binds the generic reconcile engine to IPO stocks.
//
// The compared and overwritten fields are expectedPrice, priceRange, sharesOffered,
// ipoDate, status, sector, industry, description, marketCap, revenue, netIncome,
// employees and website. Identity fields (symbol, market, companyName) and
// underwriters are written on create only.
package reconcile
