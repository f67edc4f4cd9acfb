// file: internals/helpers/media_url.go
package helper

import (
	"net/url"
	"strings"
)

// RewriteMediaURL menulis ulang URL media eksternal menjadi path relatif "/media/..."
// jika hostname-nya ada di allow-list. Tujuannya menghindari mixed content saat
// halaman diakses lewat HTTPS. URL yang tidak dikenal / tidak valid dikembalikan
// apa adanya.
func RewriteMediaURL(raw string, allowedHosts []string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(allowedHosts) == 0 {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return raw
	}

	host := strings.ToLower(u.Hostname())
	for _, allowed := range allowedHosts {
		if host != strings.ToLower(strings.TrimSpace(allowed)) {
			continue
		}
		path := u.EscapedPath()
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		rewritten := "/media" + path
		if u.RawQuery != "" {
			rewritten += "?" + u.RawQuery
		}
		return rewritten
	}
	return raw
}
