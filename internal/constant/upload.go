package constant

const (
	// UploadMaxSize is the largest accepted image payload.
	UploadMaxSize = 5 << 20 // 5 MiB

	// UploadPublicPrefix is the public route prefix under which stored
	// assets are served and referenced.
	UploadPublicPrefix = "/uploads"
)

// UploadAllowedTypes are the accepted image content types.
var UploadAllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// UploadKnownExtensions are filename suffixes recognized when deriving the
// stored extension. Anything else falls back to ".jpg".
var UploadKnownExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
