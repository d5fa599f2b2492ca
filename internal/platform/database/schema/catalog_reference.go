package schema

// CatalogReferenceTable represents one of the tiered reference tables
// ('catalog.author', 'catalog.publisher', 'catalog.binder'). They share a shape.
type CatalogReferenceTable struct {
	Table     string
	ID        string
	Name      string
	Tier      string
	Preferred string
	CreatedAt string
	UpdatedAt string
}

func referenceTable(name string) CatalogReferenceTable {
	return CatalogReferenceTable{
		Table:     name,
		ID:        "id",
		Name:      "name",
		Tier:      "tier",
		Preferred: "preferred",
		CreatedAt: "createdat",
		UpdatedAt: "updatedat",
	}
}

var (
	// CatalogAuthor is the schema definition for catalog.author
	CatalogAuthor = referenceTable("catalog.author")
	// CatalogPublisher is the schema definition for catalog.publisher
	CatalogPublisher = referenceTable("catalog.publisher")
	// CatalogBinder is the schema definition for catalog.binder
	CatalogBinder = referenceTable("catalog.binder")
)

// Columns returns the readable columns in scan order.
func (t CatalogReferenceTable) Columns() []string {
	return []string{t.ID, t.Name, t.Tier, t.Preferred, t.CreatedAt, t.UpdatedAt}
}
