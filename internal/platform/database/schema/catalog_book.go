package schema

// CatalogBookTable represents the 'catalog.book' table
type CatalogBookTable struct {
	Table            string
	ID               string
	Title            string
	AuthorID         string
	PublisherID      string
	BinderID         string
	PurchasePrice    string
	PurchaseCurrency string
	ValueMid         string
	PublicationYear  string
	ConditionGrade   string
	CompleteSet      string
	Status           string
	InvestmentGrade  string
	StrategicFit     string
	CollectionImpact string
	ScoredAt         string
	CreatedAt        string
	UpdatedAt        string
}

// CatalogBook is the schema definition for catalog.book
var CatalogBook = CatalogBookTable{
	Table:            "catalog.book",
	ID:               "id",
	Title:            "title",
	AuthorID:         "authorid",
	PublisherID:      "publisherid",
	BinderID:         "binderid",
	PurchasePrice:    "purchaseprice",
	PurchaseCurrency: "purchasecurrency",
	ValueMid:         "valuemid",
	PublicationYear:  "publicationyear",
	ConditionGrade:   "conditiongrade",
	CompleteSet:      "completeset",
	Status:           "status",
	InvestmentGrade:  "investmentgrade",
	StrategicFit:     "strategicfit",
	CollectionImpact: "collectionimpact",
	ScoredAt:         "scoredat",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns the readable columns in scan order.
func (t CatalogBookTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.AuthorID, t.PublisherID, t.BinderID,
		t.PurchasePrice, t.PurchaseCurrency, t.ValueMid, t.PublicationYear,
		t.ConditionGrade, t.CompleteSet, t.Status,
		t.InvestmentGrade, t.StrategicFit, t.CollectionImpact, t.ScoredAt,
		t.CreatedAt, t.UpdatedAt,
	}
}
