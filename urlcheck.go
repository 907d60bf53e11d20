package simplefetch

import "net/url"

// IsValidURL reports whether raw parses as an absolute URL with both a
// scheme and a host. It never touches the network.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
