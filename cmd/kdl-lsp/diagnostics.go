package main

import (
	"context"

	"github.com/signadot/go-kdl/token"

	"go.lsp.dev/protocol"
)

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	td := params.TextDocument
	doc := s.docs.update(td.URI, td.Text, td.Version)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole text
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.update(params.TextDocument.URI, text, params.TextDocument.Version)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.docs.delete(string(uri))
	if s.conn == nil {
		return nil
	}
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Diagnostics: diagnostics(doc.content, doc.errs),
	})
}

func diagnostics(content string, errs []*token.Error) []protocol.Diagnostic {
	res := make([]protocol.Diagnostic, 0, len(errs))
	for _, e := range errs {
		res = append(res, protocol.Diagnostic{
			Range:    errorRange(content, e),
			Severity: protocol.DiagnosticSeverityError,
			Source:   lsName,
			Message:  e.Message(),
		})
	}
	return res
}

// errorRange covers the offending token when it sits on one line, or a
// single character at the error position.  Errors at the end of input
// point past the last character.
func errorRange(content string, e *token.Error) protocol.Range {
	idx := newLineIndex(content)
	p := e.Where()
	if p == nil {
		end := idx.position(len(content))
		return protocol.Range{Start: end, End: end}
	}
	start := idx.position(p.Offset)
	end := protocol.Position{Line: start.Line, Character: start.Character + 1}
	if e.Token != nil && e.Token.Start == *p && e.Token.End.Offset > p.Offset {
		if tokEnd := idx.position(e.Token.End.Offset); tokEnd.Line == start.Line {
			end = tokEnd
		}
	}
	return protocol.Range{Start: start, End: end}
}

func endPosition(content string) protocol.Position {
	return newLineIndex(content).position(len(content))
}
