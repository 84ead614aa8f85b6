// Package ingestion orchestrates the embedding pipeline for a labeled
// corpus.
//
// The Pipeline type runs the full workflow: load every source document,
// assemble the flat record sequence, obtain one embedding vector per record
// from the external service, merge text and vectors positionally, and write
// the finished dataset container.
//
// The embedding Client is the only component that blocks on I/O repeatedly.
// Service failures are assumed transient and recovered with a fixed-delay
// retry loop; by default the loop never gives up, so a permanently broken
// credential or a down service shows up as logged retries and a stalled
// progress line rather than a pipeline failure. Context cancellation is the
// operator's escape hatch.
package ingestion
