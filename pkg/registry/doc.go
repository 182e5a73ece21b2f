// Package registry provides a generic, thread-safe name to item registry.
// Built-in items are usually added from init functions with MustRegister.
package registry
