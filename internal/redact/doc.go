// Package redact removes secrets from diff content before it is sent to a
// hosted model.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private key blocks, AWS access key IDs, bearer tokens, and
// provider-specific tokens (Google, OpenAI, GitHub). Redaction is opt-in;
// when disabled the composed prompt reproduces its inputs byte for byte.
package redact
