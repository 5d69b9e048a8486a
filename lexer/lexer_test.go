package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// represents a test case for Tokenize
// Input: source program text
// ExpectedKinds: the Kind of each resulting token, in order
type tokenizeCase struct {
	Input         string
	ExpectedKinds []Kind
}

func TestTokenize_Basics(t *testing.T) {
	tests := []tokenizeCase{
		{
			Input:         "hts",
			ExpectedKinds: []Kind{KindBasic, KindBasic, KindBasic},
		},
		{
			Input:         "mhz",
			ExpectedKinds: []Kind{KindHigher, KindBasic, KindBound1},
		},
		{
			Input:         "bhhzhhz",
			ExpectedKinds: []Kind{KindDouble, KindBasic, KindBasic, KindBound1, KindBasic, KindBasic, KindBound1},
		},
	}

	for _, test := range tests {
		tokens, err := Tokenize(test.Input)
		require.NoError(t, err)
		require.Equal(t, len(test.ExpectedKinds), len(tokens))
		for i, kind := range test.ExpectedKinds {
			assert.Equal(t, kind, tokens[i].Kind, "token %d of %q", i, test.Input)
		}
	}
}

func TestTokenize_UnknownCharacter(t *testing.T) {
	_, err := Tokenize("hgt")
	require.Error(t, err)
	lexErr, ok := err.(*LexError)
	require.True(t, ok)
	assert.Equal(t, 1, lexErr.Pos)
	assert.Equal(t, byte('g'), lexErr.Char)
}

func TestTokenize_EvenQuotesUnchanged(t *testing.T) {
	tokens, err := Tokenize("qhq")
	require.NoError(t, err)
	assert.Equal(t, KindBoundQuote, tokens[0].Kind)
	assert.Equal(t, KindBasic, tokens[1].Kind)
	assert.Equal(t, KindBoundQuote, tokens[2].Kind)
}

func TestTokenize_OddQuotesReclassifiesFirst(t *testing.T) {
	tokens, err := Tokenize("hqhqhq")
	require.NoError(t, err)
	// three 'q' at positions 1, 3, 5 -> odd count -> first becomes SoloQuote
	assert.Equal(t, KindSoloQuote, tokens[1].Kind)
	assert.Equal(t, KindBoundQuote, tokens[3].Kind)
	assert.Equal(t, KindBoundQuote, tokens[5].Kind)
}

func TestTokenize_SingleLoneQuote(t *testing.T) {
	tokens, err := Tokenize("q")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindSoloQuote, tokens[0].Kind)
}
