// Package app contains the core application logic. It loads a catalog,
// replays a toggle sequence through the engine, renders the resolved state
// and optionally serves the engine over HTTP, decoupled from any specific
// entrypoint like a CLI.
package app
