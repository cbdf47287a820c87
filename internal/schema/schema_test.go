package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUser(t *testing.T) {
	doc := map[string]interface{}{
		"name":          "Ada",
		"email":         "ada@x.com",
		"password_hash": "abc123",
	}
	out, err := Validate(KindUser, doc)
	require.NoError(t, err)
	assert.Equal(t, "Ada", out["name"])
	// default applied for absent optional field
	assert.Equal(t, true, out["is_active"])
}

func TestValidateMissingRequired(t *testing.T) {
	_, err := Validate(KindUser, map[string]interface{}{
		"email":         "ada@x.com",
		"password_hash": "abc123",
	})
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
}

func TestValidateTypeMismatch(t *testing.T) {
	_, err := Validate(KindUser, map[string]interface{}{
		"name":          42,
		"email":         "ada@x.com",
		"password_hash": "abc123",
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
}

func TestValidateEmailFormat(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"ada@x.com", true},
		{"not-an-email", false},
		{"", false},
		{"Ada <ada@x.com>", false},
	}
	for _, tc := range cases {
		_, err := Validate(KindContactMessage, map[string]interface{}{
			"name":    "Ada",
			"email":   tc.email,
			"message": "hi",
		})
		if tc.ok {
			assert.NoError(t, err, "email %q", tc.email)
		} else {
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "email %q should fail", tc.email)
			assert.Equal(t, "email", verr.Field)
		}
	}
}

func TestValidateBlogPostDefaults(t *testing.T) {
	out, err := Validate(KindBlogPost, map[string]interface{}{
		"title":   "T",
		"slug":    "t",
		"content": "body",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, out["tags"])
	assert.Equal(t, true, out["published"])
	// absent optional fields without defaults stay absent
	_, ok := out["excerpt"]
	assert.False(t, ok)
}

func TestValidateTagsFromJSON(t *testing.T) {
	// JSON decoding produces []interface{}
	out, err := Validate(KindBlogPost, map[string]interface{}{
		"title":   "T",
		"slug":    "t",
		"content": "body",
		"tags":    []interface{}{"a", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out["tags"])

	_, err = Validate(KindBlogPost, map[string]interface{}{
		"title":   "T",
		"slug":    "t",
		"content": "body",
		"tags":    []interface{}{"a", 7},
	})
	require.Error(t, err)
}

func TestValidateProductPrice(t *testing.T) {
	out, err := Validate(KindProduct, map[string]interface{}{
		"title":    "Widget",
		"price":    9.99,
		"category": "tools",
	})
	require.NoError(t, err)
	assert.Equal(t, 9.99, out["price"])
	assert.Equal(t, true, out["in_stock"])

	// integers coerce to float
	out, err = Validate(KindProduct, map[string]interface{}{
		"title":    "Widget",
		"price":    10,
		"category": "tools",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(10), out["price"])
}

func TestValidateUnknownKind(t *testing.T) {
	_, err := Validate(Kind("nope"), map[string]interface{}{})
	require.Error(t, err)
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, []string{"name", "email", "password_hash", "is_active"}, FieldNames(KindUser))
	assert.Nil(t, Fields(Kind("nope")))
}
