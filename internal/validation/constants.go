package validation

const (
	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// Upload limits
	MaxImageSizeBytes = 5 * 1024 * 1024

	// String lengths
	MaxDescriptionLength = 500
)
