package converters_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apriori/converters"
)

func TestReadBaskets(t *testing.T) {
	in := `# weekly log
milk, bread
bread,beer,diapers,beer

  
"frozen, pizza",milk
`
	txs, err := converters.ReadBaskets(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"bread", "milk"},
		{"beer", "bread", "diapers"},
		{"frozen, pizza", "milk"},
	}, txs)
}

func TestReadBaskets_Delimiter(t *testing.T) {
	txs, err := converters.ReadBaskets(strings.NewReader("b;a\nc\n"), converters.WithDelimiter(';'))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, txs)

	txs, err = converters.ReadBaskets(strings.NewReader("b\ta\tb\n"), converters.WithDelimiter('\t'))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}}, txs)

	assert.Panics(t, func() { converters.WithDelimiter('"') })
}

func TestReadBaskets_WithoutNormalize(t *testing.T) {
	txs, err := converters.ReadBaskets(strings.NewReader("b,a,b\n"), converters.WithoutNormalize())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"b", "a", "b"}}, txs)
}

func TestReadBaskets_EmptyItem(t *testing.T) {
	_, err := converters.ReadBaskets(strings.NewReader("a,b\nc,,d\n"))
	assert.ErrorIs(t, err, converters.ErrEmptyItem)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "field 1")
}

func TestReadBaskets_Empty(t *testing.T) {
	txs, err := converters.ReadBaskets(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestReadBaskets_BadQuote(t *testing.T) {
	_, err := converters.ReadBaskets(strings.NewReader("a,\"b\n"))
	assert.Error(t, err)
}

func TestReadYAML(t *testing.T) {
	in := `
transactions:
  - [milk, bread]
  - [beer, " diapers ", beer]
  - []
`
	txs, err := converters.ReadYAML(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"bread", "milk"}, {"beer", "diapers"}, {}}, txs)

	txs, err = converters.ReadYAML(strings.NewReader(in), converters.WithoutNormalize())
	require.NoError(t, err)
	assert.Equal(t, []string{"beer", "diapers", "beer"}, txs[1])
}

func TestReadYAML_Errors(t *testing.T) {
	_, err := converters.ReadYAML(strings.NewReader("transactions:\n  - [a, '']\n"))
	assert.ErrorIs(t, err, converters.ErrEmptyItem)
	assert.Contains(t, err.Error(), "transaction 0")

	_, err = converters.ReadYAML(strings.NewReader("transactions: {a: 1}\n"))
	assert.Error(t, err)

	txs, err := converters.ReadYAML(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, txs)
}
