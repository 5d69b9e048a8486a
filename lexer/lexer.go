package lexer

// Tokenize performs the lexer's one pass over src (§4.1): every byte is
// looked up in the token alphabet, and an unrecognized byte aborts with a
// LexError. After mapping, a single post-pass counts the BoundQuote tokens;
// if that count is odd, the first BoundQuote is reclassified as a
// SoloQuote. All other tokens are left untouched — the lexer performs no
// validation of nesting, which is entirely the parser's concern.
func Tokenize(src string) ([]Token, error) {
	tokens := make([]Token, 0, len(src))
	for i := 0; i < len(src); i++ {
		c := src[i]
		tok, ok := alphabet[c]
		if !ok {
			return nil, &LexError{Pos: i, Char: c}
		}
		tok.Literal = c
		tokens = append(tokens, tok)
	}
	reclassifyLoneQuote(tokens)
	return tokens, nil
}

// reclassifyLoneQuote implements the odd-BoundQuote-count post-pass: the
// first BoundQuote in the stream becomes a SoloQuote when the total count of
// BoundQuote tokens is odd.
func reclassifyLoneQuote(tokens []Token) {
	count := 0
	for _, t := range tokens {
		if t.Kind == KindBoundQuote {
			count++
		}
	}
	if count%2 == 0 {
		return
	}
	for i := range tokens {
		if tokens[i].Kind == KindBoundQuote {
			tokens[i].Kind = KindSoloQuote
			return
		}
	}
}
