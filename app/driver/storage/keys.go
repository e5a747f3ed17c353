package storage

import (
	"fmt"

	"github.com/google/uuid"
)

var extensionByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/avif": ".avif",
}

// PhotoKey builds the object key for a photo. Keys are namespaced by trip
// so bulk deletion of a trip's objects stays a prefix operation.
func PhotoKey(tripID, photoID uuid.UUID, contentType string) string {
	ext, ok := extensionByContentType[contentType]
	if !ok {
		ext = ".bin"
	}
	return fmt.Sprintf("trips/%s/%s%s", tripID, photoID, ext)
}
