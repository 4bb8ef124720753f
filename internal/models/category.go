package models

// Category groups talents on the roster. A default set of four categories is
// seeded before any user category is added.
type Category struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LocalizedName string `json:"localizedName,omitempty"`
	SortOrder     int    `json:"sortOrder"`
}

func (c Category) RecordID() string { return c.ID }

// CategoryPatch carries a partial update: nil fields keep their prior values.
type CategoryPatch struct {
	Name          *string `json:"name,omitempty"`
	LocalizedName *string `json:"localizedName,omitempty"`
	SortOrder     *int    `json:"sortOrder,omitempty"`
}

func (cp CategoryPatch) Apply(c *Category) {
	if cp.Name != nil {
		c.Name = *cp.Name
	}
	if cp.LocalizedName != nil {
		c.LocalizedName = *cp.LocalizedName
	}
	if cp.SortOrder != nil {
		c.SortOrder = *cp.SortOrder
	}
}
