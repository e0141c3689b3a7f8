// Package schema defines the wire-level types of the x-callback-url
// convention: the XCallbackURL model with its reserved/action parameter
// split, the terminal Response carried back to a caller, and the protocol
// error taxonomy shared across packages.
package schema
