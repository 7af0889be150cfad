package interfaces

import "context"

// BlobRef locates a stored blob: Locator is the content-addressed key
// inside the store, URL is the resolvable public address.
type BlobRef struct {
	Locator string
	URL     string
}

// IBlobStore abstracts the content-addressable store that anchors
// signature images and rendered PDFs (e.g. S3).
//
// Put must be idempotent: re-uploading identical bytes yields the same
// locator, so pipeline retries never orphan more than one object.
type IBlobStore interface {
	Put(ctx context.Context, data []byte, name, contentType string) (BlobRef, error)
}
