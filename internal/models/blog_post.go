package models

// BlogPost represents one post in the "blogpost" collection.
type BlogPost struct {
	Title     string   `bson:"title" json:"title"`
	Slug      string   `bson:"slug" json:"slug"`
	Excerpt   string   `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content   string   `bson:"content" json:"content"`
	Tags      []string `bson:"tags" json:"tags"`
	Author    string   `bson:"author,omitempty" json:"author,omitempty"`
	Published bool     `bson:"published" json:"published"`
}

// Document returns the persisted field map for the "blogpost" collection.
func (p *BlogPost) Document() map[string]interface{} {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	doc := map[string]interface{}{
		"title":     p.Title,
		"slug":      p.Slug,
		"content":   p.Content,
		"tags":      tags,
		"published": p.Published,
	}
	if p.Excerpt != "" {
		doc["excerpt"] = p.Excerpt
	}
	if p.Author != "" {
		doc["author"] = p.Author
	}
	return doc
}

// BlogPostFromDocument maps a stored document back onto a BlogPost.
func BlogPostFromDocument(doc map[string]interface{}) *BlogPost {
	return &BlogPost{
		Title:     docString(doc, "title"),
		Slug:      docString(doc, "slug"),
		Excerpt:   docString(doc, "excerpt"),
		Content:   docString(doc, "content"),
		Tags:      docStrings(doc, "tags"),
		Author:    docString(doc, "author"),
		Published: docBool(doc, "published", true),
	}
}
