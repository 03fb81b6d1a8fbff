package main

import (
	"context"

	"github.com/signadot/go-kdl/encode"

	"go.lsp.dev/protocol"
)

// Formatting tidies the layout of a document, keeping comments.
// Documents with errors are left alone.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || len(doc.errs) > 0 || doc.doc == nil {
		return nil, nil
	}
	formatted := encode.Format(encode.Tidy(doc.doc.Clone()))
	if formatted == doc.content {
		return nil, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   endPosition(doc.content),
			},
			NewText: formatted,
		},
	}, nil
}
