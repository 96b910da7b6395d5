// Package bookmarkservice implements saved-for-later bookmarks inside the
// listings context.
//
// The module owns the bookmarks table. Saves and removals are idempotent, and
// the service exposes a cascade entrypoint so deleting a listing clears every
// bookmark that pointed at it.
package bookmarkservice
