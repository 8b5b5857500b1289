// Package app contains the inspector's core application logic: the App
// struct, its configuration, and the one-shot and interactive execution
// paths, decoupled from the CLI entrypoint.
package app
