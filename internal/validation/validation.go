package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength is the largest accepted question, in characters.
const MaxQueryLength = 1000

// ValidateQuery checks that a question is present, valid UTF-8 and not
// longer than MaxQueryLength. The message is shown to the user.
func ValidateQuery(query string) (bool, string) {
	if strings.TrimSpace(query) == "" {
		return false, "La question est requise"
	}
	if !utf8.ValidString(query) {
		return false, "La question contient des caractères invalides"
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return false, "La question ne doit pas dépasser 1000 caractères"
	}
	return true, ""
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// Used for BASE_URL and CORS origins at startup.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	// Parse the URL
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateOrigins checks a comma-separated CORS origin list and returns the
// first invalid entry's message.
func ValidateOrigins(origins string) (bool, string) {
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			continue
		}
		if ok, msg := ValidateURL(o); !ok {
			return false, o + ": " + msg
		}
	}
	return true, ""
}
