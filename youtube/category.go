package youtube

import "fmt"

// Category is the duration-derived class of a video.
type Category int

const (
	// CategoryShort is any video up to ShortMaxSeconds long.
	CategoryShort Category = iota
	// CategoryRegular is everything longer.
	CategoryRegular
)

// ShortMaxSeconds is the inclusive upper bound for a short.
const ShortMaxSeconds = 60

// Categories lists every category in export order.
var Categories = []Category{CategoryShort, CategoryRegular}

// urlTemplates maps each category to the watch URL shape used for it.
var urlTemplates = map[Category]string{
	CategoryShort:   "https://www.youtube.com/shorts/%s",
	CategoryRegular: "https://www.youtube.com/watch?v=%s",
}

// Classify assigns a category from a duration in seconds.
func Classify(seconds int) Category {
	if seconds <= ShortMaxSeconds {
		return CategoryShort
	}
	return CategoryRegular
}

// String returns "short" or "regular".
func (c Category) String() string {
	switch c {
	case CategoryShort:
		return "short"
	case CategoryRegular:
		return "regular"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// VideoURL renders the URL of a video in this category.
func (c Category) VideoURL(videoID string) string {
	tmpl, ok := urlTemplates[c]
	if !ok {
		tmpl = urlTemplates[CategoryRegular]
	}
	return fmt.Sprintf(tmpl, videoID)
}
