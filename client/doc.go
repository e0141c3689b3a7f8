// Package client implements the requesting side of the x-callback-url
// protocol: the correlation registry tracking outstanding requests, the
// executor turning a fire-a-URL-and-wait interaction into a synchronous call
// with a typed response, and the dispatcher routing inbound callbacks back to
// their waiters.
package client
