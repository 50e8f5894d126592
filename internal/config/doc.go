// Package config loads refract's process-wide configuration from the
// environment.
//
// Configuration is read exactly once at startup via [Load] and passed into
// the pipeline as an immutable [Config] value. Credentials keep their
// conventional variable names (GEMINI_API_KEY, AZURE_OPENAI_KEY); everything
// else is prefixed REFRACT_. Every non-credential key has a built-in
// default, so an empty environment is a valid configuration for a dry run
// up to the provider call.
package config
