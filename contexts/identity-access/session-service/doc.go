// Package sessionservice resolves bearer tokens into actors inside the
// identity-access context.
//
// The module owns the profiles table. Verified tokens map to a profile that
// is created with the student role on first sign-in; the resolved role drives
// every authorization decision downstream.
package sessionservice
