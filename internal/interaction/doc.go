// Package interaction holds the small state machines behind the page widgets.
//
// Each controller belongs to a single view. Only Form is safe for concurrent
// use, because its reset fires on a timer goroutine.
package interaction
