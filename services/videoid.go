package services

import "regexp"

var videoIDRe = regexp.MustCompile(`(?:v=|youtu\.be/)([\w-]+)`)

// ExtractVideoID returns the video identifier from a watch URL (`...v=<id>`) or a
// short link (`youtu.be/<id>`). ok is false when rawURL contains neither.
func ExtractVideoID(rawURL string) (id string, ok bool) {
	m := videoIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}
