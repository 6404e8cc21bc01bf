// Package types defines the client record model, page arithmetic,
// response shapes, and standard errors shared by the Nextis dashboard
// storage, ingest, and view layers.
package types
