package roster

// AllCategory is the synthetic bucket that always holds every track.
const AllCategory = "all"

// Categories maps category names to tracks. Bucket contents keep roster
// order, and buckets themselves keep first-seen order with AllCategory
// first. Built once after Load and never mutated.
type Categories struct {
	order   []string
	buckets map[string][]Track
}

// BuildCategories groups tracks by their category label.
func BuildCategories(tracks []Track) *Categories {
	c := &Categories{
		order:   []string{AllCategory},
		buckets: map[string][]Track{},
	}
	c.buckets[AllCategory] = append([]Track(nil), tracks...)

	for _, t := range tracks {
		if t.Category == "" {
			continue
		}
		if _, seen := c.buckets[t.Category]; !seen {
			c.order = append(c.order, t.Category)
		}
		c.buckets[t.Category] = append(c.buckets[t.Category], t)
	}

	return c
}

// Names returns the category names, AllCategory first, then first-seen order.
func (c *Categories) Names() []string {
	return append([]string(nil), c.order...)
}

// Tracks returns the bucket for a category. Unknown names yield nil.
func (c *Categories) Tracks(name string) []Track {
	return c.buckets[name]
}

// Len returns the number of categories, including AllCategory.
func (c *Categories) Len() int {
	return len(c.order)
}
