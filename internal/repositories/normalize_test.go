package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFileList_Nil(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeFileList(nil))
}

func TestNormalizeFileList_NativeList(t *testing.T) {
	assert.Equal(t,
		[]string{"https://x/a.pdf", "https://x/b.pdf"},
		NormalizeFileList([]string{"https://x/a.pdf", "", "https://x/b.pdf"}),
	)

	// Rows scanned from JSON columns arrive as []interface{}.
	assert.Equal(t,
		[]string{"a", "b"},
		NormalizeFileList([]interface{}{"a", "", "b"}),
	)
}

func TestNormalizeFileList_JSONArrayString(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NormalizeFileList(`["a","b"]`))
	assert.Equal(t, []string{"a"}, NormalizeFileList(`["a",""]`))
	assert.Equal(t, []string{}, NormalizeFileList(`[]`))
}

func TestNormalizeFileList_JSONStringScalar(t *testing.T) {
	assert.Equal(t, []string{"https://x/y.pdf"}, NormalizeFileList(`"https://x/y.pdf"`))
	assert.Equal(t, []string{}, NormalizeFileList(`""`))
}

func TestNormalizeFileList_BareString(t *testing.T) {
	assert.Equal(t, []string{"https://x/y.pdf"}, NormalizeFileList("https://x/y.pdf"))
	assert.Equal(t, []string{}, NormalizeFileList(""))
	assert.Equal(t, []string{}, NormalizeFileList("   "))
}

func TestSerializeFileList_Empty(t *testing.T) {
	assert.Nil(t, SerializeFileList(nil))
	assert.Nil(t, SerializeFileList([]string{}))
	assert.Nil(t, SerializeFileList([]string{"", ""}))
}

func TestSerializeFileList_RoundTrip(t *testing.T) {
	lists := [][]string{
		{"https://x/a.pdf"},
		{"https://x/a.pdf", "https://x/b.docx"},
		{"plain-name.doc"},
	}
	for _, list := range lists {
		encoded := SerializeFileList(list)
		require.NotNil(t, encoded)
		assert.Equal(t, list, NormalizeFileList(*encoded))
	}
}

func TestNormalizeFileList_Idempotent(t *testing.T) {
	inputs := []interface{}{
		nil,
		"",
		"https://x/y.pdf",
		`["a","b"]`,
		`not json at all`,
		[]string{"a", "", "b"},
	}
	for _, input := range inputs {
		once := NormalizeFileList(input)
		encoded := SerializeFileList(once)
		if encoded == nil {
			assert.Empty(t, once)
			continue
		}
		assert.Equal(t, once, NormalizeFileList(*encoded))
	}
}

func TestResolveField_CasePreference(t *testing.T) {
	row := map[string]interface{}{"NAME": "Ana"}
	assert.Equal(t, "Ana", ResolveField(row, "name"))

	// Verbatim wins over other casings.
	row = map[string]interface{}{"name": "lower", "NAME": "UPPER"}
	assert.Equal(t, "lower", ResolveField(row, "name"))

	assert.Nil(t, ResolveField(map[string]interface{}{}, "name"))
	assert.Nil(t, ResolveField(map[string]interface{}{"name": nil}, "name"))
}

func TestStringField_Types(t *testing.T) {
	row := map[string]interface{}{"EMAIL": "a@b.c", "raw": []byte("bytes")}
	assert.Equal(t, "a@b.c", stringField(row, "email"))
	assert.Equal(t, "bytes", stringField(row, "raw"))
	assert.Equal(t, "", stringField(row, "missing"))
}

func TestTimeField_Forms(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	got := timeField(map[string]interface{}{"created_at": now}, "created_at")
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))

	got = timeField(map[string]interface{}{"CREATED_AT": "2026-03-01T09:00:00Z"}, "created_at")
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))

	assert.Nil(t, timeField(map[string]interface{}{}, "created_at"))
}
