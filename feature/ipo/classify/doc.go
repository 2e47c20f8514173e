// Package classify infers a sector for listings whose source reports none.
//
// Rules are evaluated in order and the first match wins. Reordering the list changes
// results, so new rules go where their precedence belongs rather than at the end.
package classify
