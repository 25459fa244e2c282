// Package storage provides the durable document sinks that back the file
// delivery variant: a local filesystem store and an S3-compatible store.
//
// Both implement DocumentStore, which deals in whole documents rather than
// streamed uploads - a submission record is a few kilobytes of JSON, written
// once and never rewritten. Parent directories (or key prefixes) are created
// as needed, and local paths are confined to the configured base directory
// to prevent traversal.
package storage
