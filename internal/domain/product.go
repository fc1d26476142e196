package domain

// Product represents a catalog item. The catalog is static; Rating and
// ReviewCount are filled in from live review aggregates at read time.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         int     `json:"price"`
	OriginalPrice int     `json:"originalPrice,omitempty"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Badge         string  `json:"badge,omitempty"`
	IconName      string  `json:"iconName,omitempty"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
}

// ProductCatalog defines read access to the catalog
type ProductCatalog interface {
	// GetByID returns the product with the given ID, or false if unknown
	GetByID(id string) (*Product, bool)

	// List returns every catalog product
	List() []*Product
}
