package main

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/signadot/go-kdl/token"

	"go.lsp.dev/protocol"
)

// tokenTypes and tokenModifiers form the legend sent in Initialize.
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenType,
		protocol.SemanticTokenStruct,
	}

	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
		protocol.SemanticTokenModifierModification,
	}
)

type semToken struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
	modifiers []protocol.SemanticTokenModifiers
}

// semanticTokens classifies the tokens of content.  Tokenizing stops
// at the first fatal error; the tokens before it are still reported.
func semanticTokens(content string) []semToken {
	toks, _ := token.Tokenize([]byte(content), token.NumberSuffixes(true))
	idx := newLineIndex(content)
	var res []semToken
	nodeStart, inTag := true, false
	for i := range toks {
		tok := &toks[i]
		var tt protocol.SemanticTokenTypes
		var mods []protocol.SemanticTokenModifiers
		switch tok.Type {
		case token.TNewline, token.TSemicolon, token.TOpenBrace, token.TCloseBrace:
			nodeStart = true
			continue
		case token.TWhitespace, token.TEscLine, token.TEOF:
			continue
		case token.TOpenParen:
			inTag = true
			continue
		case token.TCloseParen:
			inTag = false
			continue
		case token.TSingleLineComment, token.TMultiLineComment, token.TSlashdash:
			tt = protocol.SemanticTokenComment
		case token.TKeyword:
			tt = protocol.SemanticTokenKeyword
		case token.TEquals:
			tt = protocol.SemanticTokenOperator
		case token.TNumberSuffix:
			tt = protocol.SemanticTokenType
		case token.TInvalid:
			nodeStart = false
			continue
		default:
			switch {
			case tok.Type.IsNumber():
				tt = protocol.SemanticTokenNumber
			case !tok.Type.IsString():
				continue
			case inTag:
				tt = protocol.SemanticTokenType
			case nodeStart:
				tt = protocol.SemanticTokenStruct
				mods = []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition}
			case followedByEquals(toks[i+1:]):
				tt = protocol.SemanticTokenProperty
			default:
				tt = protocol.SemanticTokenString
			}
		}
		if tt != protocol.SemanticTokenComment && !inTag {
			nodeStart = false
		}
		res = append(res, splitToken(idx, tok, tt, mods)...)
	}
	return res
}

func followedByEquals(toks []token.Token) bool {
	for i := range toks {
		switch toks[i].Type {
		case token.TWhitespace, token.TMultiLineComment, token.TEscLine:
			continue
		case token.TEquals:
			return true
		}
		return false
	}
	return false
}

// splitToken breaks a token spanning several lines into one semantic
// token per non-empty line.
func splitToken(idx *lineIndex, tok *token.Token, tt protocol.SemanticTokenTypes, mods []protocol.SemanticTokenModifiers) []semToken {
	var res []semToken
	for off := tok.Start.Offset; off < tok.End.Offset; {
		next := idx.lineEnd(off)
		seg := idx.text[off:min(next, tok.End.Offset)]
		seg = strings.TrimSuffix(strings.TrimSuffix(seg, "\n"), "\r")
		if n := utf8.RuneCountInString(seg); n > 0 {
			p := idx.position(off)
			res = append(res, semToken{
				line:      p.Line,
				character: p.Character,
				length:    uint32(n),
				tokenType: tt,
				modifiers: mods,
			})
		}
		off = next
	}
	return res
}

// encodeSemanticTokens produces the relative encoding of the LSP
// semanticTokens response.
func encodeSemanticTokens(toks []semToken) []uint32 {
	sort.SliceStable(toks, func(i, j int) bool {
		if toks[i].line != toks[j].line {
			return toks[i].line < toks[j].line
		}
		return toks[i].character < toks[j].character
	})

	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	modifierMap := make(map[protocol.SemanticTokenModifiers]uint32)
	for i, tm := range tokenModifiers {
		modifierMap[tm] = uint32(i)
	}

	data := make([]uint32, 0, 5*len(toks))
	var prevLine, prevChar uint32
	for _, st := range toks {
		deltaLine := st.line - prevLine
		deltaChar := st.character
		if deltaLine == 0 {
			deltaChar = st.character - prevChar
		}
		bits := uint32(0)
		for _, mod := range st.modifiers {
			if idx, ok := modifierMap[mod]; ok {
				bits |= 1 << idx
			}
		}
		data = append(data, deltaLine, deltaChar, st.length, typeMap[st.tokenType], bits)
		prevLine, prevChar = st.line, st.character
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(semanticTokens(doc.content)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	r := params.Range
	var in []semToken
	for _, st := range semanticTokens(doc.content) {
		if st.line < r.Start.Line || st.line > r.End.Line {
			continue
		}
		in = append(in, st)
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(in),
	}, nil
}
