// Package providers contains clients for hosted generation endpoints.
//
// Each provider implements the [Reviewer] interface: one prompt in, raw
// response text out, exactly one HTTP request per call. There is no retry
// or backoff; a failed request propagates to the caller, and 401/403
// responses surface as a typed authentication error the CLI maps to its
// auth exit code.
//
// Each client stores its endpoint base URL in a struct field so tests can
// point it at local httptest servers without making live API calls.
package providers
