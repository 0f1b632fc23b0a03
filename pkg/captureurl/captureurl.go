// Package captureurl extracts video identifiers and segment filenames from
// the delivery URLs the capture side intercepts, e.g.
//
//	https://vod-akm.play.example.com/video/GZWlDBXdRA/hls/GZWlDBXdRA-1723812919000-textstream_eng=1000-70.webvtt?token=...
//
// yielding video ID "GZWlDBXdRA" and filename
// "GZWlDBXdRA-1723812919000-textstream_eng=1000-70".
package captureurl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const segmentSuffix = ".webvtt"

var videoIDRe = regexp.MustCompile(`/video/([^/]+)/hls/`)

// Extract returns the video identifier and the segment filename (without
// its extension) from a capture URL. filename is empty when the last path
// segment is not a .webvtt resource. An error means no video identifier
// could be found at all.
func Extract(rawURL string) (videoID, filename string, err error) {
	m := videoIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", "", fmt.Errorf("no video ID between /video/ and /hls/ in URL: %s", rawURL)
	}
	videoID = m[1]

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return videoID, "", fmt.Errorf("parse URL: %w", err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	last := segments[len(segments)-1]
	if strings.HasSuffix(last, segmentSuffix) {
		filename = strings.TrimSuffix(last, segmentSuffix)
	}

	return videoID, filename, nil
}
