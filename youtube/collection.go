package youtube

// Collection holds the records of one traversal, bucketed by category in
// playlist order.
type Collection struct {
	Short   []VideoRecord `json:"short"`
	Regular []VideoRecord `json:"regular"`

	// Skipped lists videos that produced no record.
	Skipped []SkippedVideo `json:"skipped,omitempty"`

	// ItemsSeen counts playlist items across all pages.
	ItemsSeen int `json:"items_seen"`
	// Pages counts playlist pages fetched.
	Pages int `json:"pages"`
}

// SkippedVideo records why a playlist item has no record.
type SkippedVideo struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Bucket returns the records of one category.
func (c *Collection) Bucket(cat Category) []VideoRecord {
	if cat == CategoryShort {
		return c.Short
	}
	return c.Regular
}

// Len returns the number of records across both buckets.
func (c *Collection) Len() int {
	return len(c.Short) + len(c.Regular)
}

func (c *Collection) add(rec VideoRecord) {
	if rec.Category == CategoryShort {
		c.Short = append(c.Short, rec)
		return
	}
	c.Regular = append(c.Regular, rec)
}

func (c *Collection) skip(id, reason string) {
	c.Skipped = append(c.Skipped, SkippedVideo{ID: id, Reason: reason})
}
