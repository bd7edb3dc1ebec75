// Package generator synthesizes docstring blocks for extracted
// declarations.
//
// Generation runs in one of two modes. In delegated mode an injected
// Capability (an external text-generation client) produces the block; any
// failure from it - timeout, transport error, malformed response - degrades
// to fallback mode and never aborts the pipeline. In fallback mode a
// deterministic template builds the block from the declaration's parameter
// list and the configured style, producing identical output for identical
// (code, kind, name, style) input.
//
// Two prose styles are supported: Google (default) and NumPy (alternate).
// Unrecognized styles normalize to Google.
//
// Results are cached in an in-memory LRU keyed by a content hash, with an
// optional persistent Store consulted between the LRU and the capability.
//
// # Providers
//
// Two Capability implementations ship with the package: an Anthropic
// messages-API client (plain JSON over HTTP with exponential-backoff
// retry) and an OpenAI chat-completions client built on the official SDK.
// NewFromEnv selects one from the environment, defaulting to template-only
// operation when no API key is configured.
//
// The generator never touches the file system.
package generator
