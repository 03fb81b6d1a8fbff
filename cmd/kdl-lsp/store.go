package main

import (
	"sync"

	"github.com/signadot/go-kdl/debug"
	"github.com/signadot/go-kdl/ir"
	"github.com/signadot/go-kdl/parse"
	"github.com/signadot/go-kdl/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     protocol.DocumentURI
	content string
	version int32
	// doc is the last successful parse, kept while the content has
	// errors so hover keeps working.
	doc  *ir.Document
	errs []*token.Error
}

func (s *documentStore) get(uri string) *document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

func (s *documentStore) set(uri string, doc *document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = doc
}

func (s *documentStore) delete(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// update stores content under uri and parses it.
func (s *documentStore) update(uri protocol.DocumentURI, content string, version int32) *document {
	prev := s.get(string(uri))
	d := &document{uri: uri, content: content, version: version}
	d.parse()
	if d.doc == nil && prev != nil {
		d.doc = prev.doc
	}
	s.set(string(uri), d)
	return d
}

func (d *document) parse() {
	doc, err := parse.ParseDocument([]byte(d.content),
		parse.ParseLocations(true), parse.NumberSuffixes(true))
	if err != nil {
		d.errs = token.Errors(err)
		if debug.LSP() {
			debug.Logf("parse %s: %v\n", d.uri, err)
		}
		return
	}
	d.doc = doc
	d.errs = nil
}
