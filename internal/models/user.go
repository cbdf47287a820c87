package models

// User represents an application user registered through signup.
type User struct {
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	IsActive     bool   `bson:"is_active" json:"is_active"`
}

// Document returns the persisted field map for the "user" collection.
func (u *User) Document() map[string]interface{} {
	return map[string]interface{}{
		"name":          u.Name,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"is_active":     u.IsActive,
	}
}

// UserFromDocument maps a stored document back onto a User.
func UserFromDocument(doc map[string]interface{}) *User {
	return &User{
		Name:         docString(doc, "name"),
		Email:        docString(doc, "email"),
		PasswordHash: docString(doc, "password_hash"),
		IsActive:     docBool(doc, "is_active", true),
	}
}
