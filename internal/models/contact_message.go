package models

// ContactMessage represents one submission in the "contactmessage" collection.
type ContactMessage struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Message string `bson:"message" json:"message"`
}

// Document returns the persisted field map for the "contactmessage" collection.
func (m *ContactMessage) Document() map[string]interface{} {
	return map[string]interface{}{
		"name":    m.Name,
		"email":   m.Email,
		"message": m.Message,
	}
}

// ContactMessageFromDocument maps a stored document back onto a ContactMessage.
func ContactMessageFromDocument(doc map[string]interface{}) *ContactMessage {
	return &ContactMessage{
		Name:    docString(doc, "name"),
		Email:   docString(doc, "email"),
		Message: docString(doc, "message"),
	}
}
