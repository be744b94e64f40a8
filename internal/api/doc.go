// Package api is the authenticated HTTP layer between the mxradar client
// and the hosted backend.
//
// Responsibilities:
//   - attach the bearer credential to every outbound request while a
//     session exists;
//   - detect loss of authentication (HTTP 401) uniformly, tear the session
//     down exactly once, and notify the host application;
//   - classify every failure into the apierr taxonomy (network, auth,
//     rate limit, server) with human-readable messages;
//   - pass 2xx response bodies through verbatim as json.RawMessage — this
//     layer never interprets domain payloads.
//
// Nothing here retries. A stale credential does not become valid by
// retrying, and rate limits only clear with time; both are surfaced to the
// caller to act on.
package api
