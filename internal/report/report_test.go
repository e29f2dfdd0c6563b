package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fpeterek/strojove-uceni/internal/apriori"
	"github.com/fpeterek/strojove-uceni/internal/combin"
	"github.com/fpeterek/strojove-uceni/internal/common"
	"github.com/fpeterek/strojove-uceni/internal/model"
)

func boundaryPatterns(t *testing.T) *apriori.Patterns[int] {
	t.Helper()
	ds := model.Dataset[int]{
		model.NewTransaction(1, 2, 3),
		model.NewTransaction(1, 2),
		model.NewTransaction(1, 3),
		model.NewTransaction(2, 3),
		model.NewTransaction(1),
	}
	p, err := apriori.FindPatterns(context.Background(), ds,
		apriori.WithMinSupport(0.4),
		apriori.WithMinConfidence(0.5),
		apriori.WithThresholdPolicy(apriori.PolicyInclusive))
	require.NoError(t, err)
	return p
}

func TestWriteCombinations(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteCombinations(&buf, combin.RangeSeq(1, 4, 2))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "[1 2]\n[1 3]\n[1 4]\n[2 3]\n[2 4]\n[3 4]\n", buf.String())
}

func TestTuple(t *testing.T) {
	assert.Equal(t, "(1,)", Tuple(model.NewItemset(1)))
	assert.Equal(t, "(1, 2)", Tuple(model.NewItemset(2, 1)))
	assert.Equal(t, "()", Tuple(model.NewItemset[int]()))
}

func TestFloat(t *testing.T) {
	tests := []struct {
		want string
		in   float64
	}{
		{in: 0.5, want: "0.5"},
		{in: 1, want: "1.0"},
		{in: 2.0 / 3, want: "0.6666666666666666"},
		{in: 1e-05, want: "1e-05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Float(tt.in))
	}
}

func TestWritePatterns_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePatterns(&buf, FormatPlain, boundaryPatterns(t)))

	assert.Equal(t, `fis: {1}
fis: {2}
fis: {3}
fis: {1, 2}
fis: {1, 3}
fis: {2, 3}
(1,) => (2,) (0.5)
(1,) => (3,) (0.5)
(2,) => (1,) (0.6666666666666667)
(2,) => (3,) (0.6666666666666667)
(3,) => (1,) (0.6666666666666667)
(3,) => (2,) (0.6666666666666667)
`, buf.String())
}

func TestWritePatterns_Styled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePatterns(&buf, FormatStyled, boundaryPatterns(t)))

	out := buf.String()
	assert.Contains(t, out, "Frequent itemsets")
	assert.Contains(t, out, "{1, 2}")
	assert.Contains(t, out, "Association rules")
	assert.Contains(t, out, "(2,)")
	assert.Contains(t, out, "6 frequent itemsets")
	assert.Contains(t, out, "6 rules")
}

func TestWritePatterns_Empty(t *testing.T) {
	p, err := apriori.FindPatterns(context.Background(), model.Dataset[int]{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePatterns(&buf, FormatPlain, p))
	assert.Empty(t, buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("styled")
	require.NoError(t, err)
	assert.Equal(t, FormatStyled, f)

	_, err = ParseFormat("html")
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}
