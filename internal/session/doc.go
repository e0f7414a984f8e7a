// Package session drives one cart from text commands.
//
// A Session owns a cart for its whole lifetime. Commands arrive either as
// lines on a reader (Run) or appended to a feed file (Follow); both apply
// them on the calling goroutine, so the cart is never shared. When a
// repository is configured, every applied command is followed by a
// snapshot save, and Start restores the last snapshot.
package session
