// Package callback provides high-level helpers for interacting with
// applications that speak the x-callback-url convention
// (http://x-callback-url.com).
//
// The package glues the wire-level types in schema with the correlation
// machinery in client and the host OS collaborators in opener and inbound.
// New returns a Service bundling a correlation registry, an inbound
// dispatcher and an executing client, configured through Options the same way
// the CLI populates them from flags:
//
//	svc := callback.New(opener.NewCommandOpener(), &callback.Options{})
//	response, err := svc.Client.Execute(ctx, target)
//
// Inbound callback URLs are delivered to svc.Dispatcher by an external event
// source; inbound.HTTPSource is the bundled cross-platform source.
package callback
