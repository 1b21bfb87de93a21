package ports

import "context"

// Receives every freshly rendered map document.
type MapDisplay interface {
	Show(ctx context.Context, html string) error
}

// Hands a URL to something that can open it outside the service.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}

// Message surface for the user: one message per finished flow.
type Notifier interface {
	Info(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Destination for exported files (KML documents, PNG screenshots).
type FileSink interface {
	// Write data under name and return the location it was stored at.
	Write(ctx context.Context, name string, data []byte) (string, error)
}
