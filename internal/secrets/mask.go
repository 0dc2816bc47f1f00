package secrets

import "strings"

// Mask returns a masked version of a secret string for safe logging.
// Returns the first 4 characters followed by "..." if the secret is longer than 8 chars,
// otherwise returns "***" to avoid exposing short secrets.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:4] + "..."
}

// MaskURL replaces the userinfo of a URL with "***". Sentry DSNs carry their
// key as the username, so the whole userinfo section is treated as secret.
func MaskURL(rawURL string) string {
	schemeEnd := strings.Index(rawURL, "://")
	if schemeEnd == -1 {
		return rawURL
	}
	credStart := schemeEnd + 3

	hostEnd := len(rawURL)
	if i := strings.IndexAny(rawURL[credStart:], "/?#"); i != -1 {
		hostEnd = credStart + i
	}

	// Last @ before the path, in case the password contains @
	atIdx := strings.LastIndex(rawURL[credStart:hostEnd], "@")
	if atIdx == -1 {
		return rawURL
	}

	return rawURL[:credStart] + "***" + rawURL[credStart+atIdx:]
}
