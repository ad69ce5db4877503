package copernicus

import (
	"regexp"
	"strings"
)

var countParam = regexp.MustCompile(`[&?](\$|%24)count=true`)

// StripCountParam removes the first $count=true (or %24count=true) parameter of the url.
// If it was the first parameter, the following '&' becomes '?'.
func StripCountParam(url string) string {
	if loc := countParam.FindStringIndex(url); loc != nil {
		url = url[:loc[0]] + url[loc[1]:]
	}
	if !strings.Contains(url, "?") && strings.Contains(url, "&") {
		url = strings.Replace(url, "&", "?", 1)
	}
	return url
}

// pathEscape percent-encodes s, keeping only the unreserved characters and '/'
func pathEscape(s string) string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
			c == '-' || c == '_' || c == '.' || c == '~' || c == '/' {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&15])
	}
	return sb.String()
}
