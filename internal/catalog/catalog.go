// Package catalog holds the static, read-only table of food categories and items.
package catalog

// ImageRef is an opaque handle to an image asset. Resolving it is left to the renderer.
type ImageRef string

// Item is a single orderable product.
type Item struct {
	Name           string     `yaml:"name" json:"name"`
	Price          float64    `yaml:"price" json:"price"`
	Weight         string     `yaml:"weight" json:"weight"`
	Rating         float64    `yaml:"rating" json:"rating"`
	Image          ImageRef   `yaml:"image" json:"image"`
	Size           string     `yaml:"size" json:"size"`
	Crust          string     `yaml:"crust" json:"crust"`
	Delivery       int        `yaml:"delivery" json:"delivery"` // minutes
	Ingredients    []ImageRef `yaml:"ingredients" json:"ingredients"`
	IsTopOfTheWeek bool       `yaml:"isTopOfTheWeek" json:"is_top_of_the_week"`
}

// Category is a named grouping of items with a representative image.
type Category struct {
	Name  string   `yaml:"name" json:"name"`
	Image ImageRef `yaml:"image" json:"image"`
	Items []Item   `yaml:"items" json:"items"`
}

// Palette is the small set of named colors shared by every screen.
type Palette struct {
	White     string `yaml:"white"`
	Black     string `yaml:"black"`
	Accent    string `yaml:"accent"`
	AccentRed string `yaml:"accentRed"`
	LightGray string `yaml:"lightGray"`
}

// Catalog is loaded once at start and never mutated afterwards.
// Accessors hand out copies so callers cannot reach into the table.
type Catalog struct {
	palette    Palette
	categories []Category
}

// New builds a catalog from already validated categories.
// The slices are copied.
func New(p Palette, categories []Category) *Catalog {
	c := &Catalog{palette: p, categories: make([]Category, len(categories))}
	for i, cat := range categories {
		c.categories[i] = cloneCategory(cat)
	}
	return c
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Palette returns the named colors.
func (c *Catalog) Palette() Palette {
	return c.palette
}

// Category returns a copy of the category at index i.
func (c *Catalog) Category(i int) (Category, bool) {
	if i < 0 || i >= len(c.categories) {
		return Category{}, false
	}
	return cloneCategory(c.categories[i]), true
}

// Items returns the items of category i in their original order.
// An out-of-range index yields nil.
func (c *Catalog) Items(i int) []Item {
	if i < 0 || i >= len(c.categories) {
		return nil
	}
	src := c.categories[i].Items
	out := make([]Item, len(src))
	for j, it := range src {
		out[j] = it.Clone()
	}
	return out
}

// Categories returns a copy of every category.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cloneCategory(cat)
	}
	return out
}

// Names returns the category names in display order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// IndexOf returns the index of the category with the given name, or -1.
func (c *Catalog) IndexOf(name string) int {
	for i, cat := range c.categories {
		if cat.Name == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	if it.Ingredients != nil {
		ing := make([]ImageRef, len(it.Ingredients))
		copy(ing, it.Ingredients)
		it.Ingredients = ing
	}
	return it
}

func cloneCategory(cat Category) Category {
	items := make([]Item, len(cat.Items))
	for i, it := range cat.Items {
		items[i] = it.Clone()
	}
	cat.Items = items
	return cat
}
