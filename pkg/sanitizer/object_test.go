package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavruti/formgate/pkg/sanitizer"
)

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("routes fields by key name", func(t *testing.T) {
		t.Parallel()

		in := map[string]any{
			"userEmail": "<b>x</b>@EXAMPLE.com ",
			"phone":     "call 98255 50101",
			"mobile":    "abc+91 11111",
			"fullName":  "Jane   Doe42",
			"message":   "<script>alert(1)</script>hello",
		}

		out := sanitizer.Map(in)

		assert.Equal(t, "bxb@example.com", out["userEmail"])
		assert.Equal(t, "98255 50101", out["phone"])
		assert.Equal(t, "+91 11111", out["mobile"])
		assert.Equal(t, "Jane Doe", out["fullName"])
		assert.Equal(t, "hello", out["message"])
	})

	t.Run("email rule wins over name rule", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.Map(map[string]any{"emailName": "Jane@Example.COM"})
		assert.Equal(t, "jane@example.com", out["emailName"])
	})

	t.Run("sanitizes string slice elements as text", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.Map(map[string]any{
			"skills": []any{"<b>Spark</b>", "SQL", 7, true},
		})

		skills, ok := out["skills"].([]any)
		require.True(t, ok)
		assert.Equal(t, []any{"Spark", "SQL", 7, true}, skills)
	})

	t.Run("recurses into nested maps", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.Map(map[string]any{
			"preferences": map[string]any{
				"contactEmail": "A@B.com",
				"notes":        "<i>remote only</i>",
			},
		})

		nested, ok := out["preferences"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "a@b.com", nested["contactEmail"])
		assert.Equal(t, "remote only", nested["notes"])
	})

	t.Run("non-string scalars and nils pass through", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.Map(map[string]any{
			"years":    float64(5),
			"remote":   true,
			"referrer": nil,
		})

		assert.Equal(t, float64(5), out["years"])
		assert.Equal(t, true, out["remote"])
		assert.Nil(t, out["referrer"])
	})

	t.Run("nil map returns nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, sanitizer.Map(nil))
	})
}

// Shape preservation: same keys, same nesting depth, same slice lengths.
func TestMapPreservesShape(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"name":  "Jane<script>x</script>",
		"tags":  []any{"a", "b", 3, nil},
		"inner": map[string]any{"deep": map[string]any{"leaf": "<p>v</p>"}},
		"count": 2,
	}

	out := sanitizer.Map(in)

	require.Len(t, out, len(in))
	for key := range in {
		assert.Contains(t, out, key)
	}

	tags, ok := out["tags"].([]any)
	require.True(t, ok)
	assert.Len(t, tags, 4)

	inner, ok := out["inner"].(map[string]any)
	require.True(t, ok)
	deep, ok := inner["deep"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "v", deep["leaf"])
}

func TestForField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key      string
		input    string
		expected string
	}{
		{"Email", "X@Y.COM", "x@y.com"},
		{"workEmail", "X@Y.COM", "x@y.com"},
		{"phoneNumber", "x123", "123"},
		{"MobileNo", "x123", "123"},
		{"firstName", "Jane2", "Jane"},
		{"company", "<b>Acme</b>", "Acme"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.ForField(tt.key)(tt.input))
		})
	}
}
