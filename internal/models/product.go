package models

// Product is declared in the registry and exposed via /schema but has no
// handler yet.
type Product struct {
	Title       string  `bson:"title" json:"title"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	Category    string  `bson:"category" json:"category"`
	InStock     bool    `bson:"in_stock" json:"in_stock"`
}

// Document returns the persisted field map for the "product" collection.
func (p *Product) Document() map[string]interface{} {
	doc := map[string]interface{}{
		"title":    p.Title,
		"price":    p.Price,
		"category": p.Category,
		"in_stock": p.InStock,
	}
	if p.Description != "" {
		doc["description"] = p.Description
	}
	return doc
}

// ProductFromDocument maps a stored document back onto a Product.
func ProductFromDocument(doc map[string]interface{}) *Product {
	return &Product{
		Title:       docString(doc, "title"),
		Description: docString(doc, "description"),
		Price:       docFloat(doc, "price"),
		Category:    docString(doc, "category"),
		InStock:     docBool(doc, "in_stock", true),
	}
}
