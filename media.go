package mdrender

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// MediaKind is the category an image reference falls into.
type MediaKind uint8

const (
	MediaImage MediaKind = iota
	MediaLocalVideo
	MediaYouTube
	MediaVimeo
)

// String returns the media kind name used in error messages.
func (k MediaKind) String() string {
	switch k {
	case MediaImage:
		return "image"
	case MediaLocalVideo:
		return "local video"
	case MediaYouTube:
		return "YouTube video"
	case MediaVimeo:
		return "Vimeo video"
	default:
		return "unknown media"
	}
}

// Media is the classification of an image source URL. ID is set for
// MediaYouTube and MediaVimeo only.
type Media struct {
	Kind MediaKind
	ID   string
}

var (
	vimeoPattern   = regexp.MustCompile(`^(?:https?://)?(?:www\.)?vimeo\.com/(\d+)(?:$|/)`)
	youtubePattern = regexp.MustCompile(`^(?:https?://)?(?:youtu\.be/|(?:www\.|m\.)?youtube\.com/)(?:watch\?v=|v/|embed/)?([^&\s?]+)\S*$`)
)

// localVideoExtensions lists file extensions served as playable video files.
var localVideoExtensions = map[string]bool{
	".webm": true,
	".mp4":  true,
	".wmv":  true,
}

// Classify decides from the URL alone whether an image reference is a plain
// image, a local video file, or a YouTube or Vimeo video. Vimeo and YouTube
// patterns win over extension sniffing; anything unrecognized is an image.
func Classify(src string) Media {
	if m := vimeoPattern.FindStringSubmatch(src); m != nil {
		return Media{Kind: MediaVimeo, ID: m[1]}
	}
	if m := youtubePattern.FindStringSubmatch(src); m != nil {
		return Media{Kind: MediaYouTube, ID: m[1]}
	}
	if localVideoExtensions[strings.ToLower(path.Ext(urlPath(src)))] {
		return Media{Kind: MediaLocalVideo}
	}
	return Media{Kind: MediaImage}
}

// urlPath strips query and fragment so "clip.mp4?t=3" still sniffs as ".mp4".
func urlPath(src string) string {
	if u, err := url.Parse(src); err == nil {
		return u.Path
	}
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		return src[:i]
	}
	return src
}

// YouTubeWatchURL returns the canonical watch page of a YouTube video.
func YouTubeWatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// VimeoURL returns the canonical page of a Vimeo video.
func VimeoURL(id string) string {
	return "https://www.vimeo.com/" + id
}

// Caption holds the two optional labels of a media reference: the quoted
// Markdown title and the bracketed alt text.
type Caption struct {
	Title string
	Alt   string
}

// Primary returns the caption to display: Title, else Alt.
func (c Caption) Primary() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Alt
}

// Secondary returns Alt when Title took the primary slot, else "".
func (c Caption) Secondary() string {
	if c.Title != "" {
		return c.Alt
	}
	return ""
}
