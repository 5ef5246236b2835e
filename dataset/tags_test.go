package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveLeadingOrdinal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1 汽车", "汽车"},
		{"1.1 汽车品牌", "汽车品牌"},
		{"3、足球", "足球"},
		{"12.4.1 历史", "历史"},
		{"汽车", "汽车"},
		{"  2 体育", "体育"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RemoveLeadingOrdinal(tt.in), "input %q", tt.in)
	}
}

func TestValidateTagTree(t *testing.T) {
	raw := []byte(`[
		{"label": "1 汽车", "child": [
			{"label": "1.1 汽车品牌"},
			{"label": "1.2 汽车价格"}
		]},
		{"label": "2 体育"}
	]`)

	tree, err := ValidateTagTree(raw)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "1 汽车", tree[0].Label)
	assert.Len(t, tree[0].Child, 2)
}

func TestValidateTagTree_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty tree", `[]`},
		{"no ordinal prefix", `[{"label": "汽车"}]`},
		{"ordinal without text", `[{"label": "1"}]`},
		{
			"duplicate sibling ordinals",
			`[{"label": "1 汽车"}, {"label": "1 体育"}]`,
		},
		{
			"too deep",
			`[{"label": "1 汽车", "child": [
				{"label": "1.1 品牌", "child": [{"label": "1.1.1 德系"}]}
			]}]`,
		},
		{"not an array", `{"label": "1 汽车"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateTagTree([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, IsValidation(err, KindMalformedTagTree), "got %v", err)
		})
	}
}

func TestValidateTagTree_DuplicateOrdinalsAcrossGroups(t *testing.T) {
	// The same ordinal may appear in different sibling groups.
	raw := []byte(`[
		{"label": "1 汽车", "child": [{"label": "1.1 品牌"}]},
		{"label": "2 体育", "child": [{"label": "1.1 足球"}]}
	]`)

	_, err := ValidateTagTree(raw)
	assert.NoError(t, err)
}

func TestValidateTagLabels(t *testing.T) {
	labels, err := ValidateTagLabels([]byte(`["1.1 汽车品牌", " 1.2 汽车价格 "]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"1.1 汽车品牌", "1.2 汽车价格"}, labels)
}

func TestValidateTagLabels_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty batch", `[]`},
		{"missing ordinal", `["汽车品牌"]`},
		{"duplicate ordinals", `["1.1 品牌", "1.1 价格"]`},
		{"not a string array", `[{"label": "1.1 品牌"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateTagLabels([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, IsValidation(err, KindMalformedTagTree), "got %v", err)
		})
	}
}
