// Package command implements the user-initiated operations on the book
// collection: create, update, toggle-favorite, delete, and a full reload.
//
// # Operation Shape
//
// Every operation runs the same sequence: validate locally, call the remote
// resource, reconcile the store with the server-confirmed response, and
// return an Outcome carrying the notification message. Each invocation is
// independent — there is no operation queue, so overlapping invocations on
// the same record may race and the last response wins in the store.
//
// # Failure Policy
//
// Two error kinds exist. A *ValidationError is resolved entirely here:
// nothing is sent over the network and the store is untouched. A transport
// failure (any *api.TransportError) is caught at this boundary for every
// operation, surfaced through the Outcome, and likewise leaves the store
// exactly as it was before the attempt. No operation retries automatically;
// the user re-invokes. No failure is fatal — a failed initial Reload leaves
// an empty collection and the application keeps running.
package command
