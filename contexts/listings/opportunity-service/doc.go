// Package opportunityservice implements the opportunity directory inside the
// listings context.
//
// The module owns the opportunities table and the moderation lifecycle
// (pending, approved, rejected). Browse and detail reads, community
// submission, admin moderation, edits, and deletes all flow through
// application use cases; persistence, HTTP, and time/id concerns sit behind
// ports and adapters.
package opportunityservice
