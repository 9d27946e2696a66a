package lsp

import (
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"confucio/internal/parser"
	"confucio/internal/semantic"
)

var log = commonlog.GetLogger("confucio.lsp")

// Handler implements a diagnostics-only language server: it tracks open
// document content and publishes parse and semantic errors on every open
// and change. No completion, no tokens; the language is small enough
// that squiggles are the whole value.
type Handler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
}

func NewHandler() *Handler {
	return &Handler{
		content: make(map[protocol.DocumentUri]string),
	}
}

// Initialize advertises full-document sync and nothing else.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("opened %s", uri)

	h.mu.Lock()
	h.content[uri] = params.TextDocument.Text
	h.mu.Unlock()

	publishDiagnostics(ctx, uri, Diagnose(string(uri), params.TextDocument.Text))
	return nil
}

func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s", uri)

	// Sync is full-document, so the last whole-document event wins.
	var text string
	var seen bool
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			text = whole.Text
			seen = true
		}
	}
	if !seen {
		return nil
	}

	h.mu.Lock()
	h.content[uri] = text
	h.mu.Unlock()

	publishDiagnostics(ctx, uri, Diagnose(string(uri), text))
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("closed %s", uri)

	h.mu.Lock()
	delete(h.content, uri)
	h.mu.Unlock()

	// Clear any lingering squiggles for the closed document.
	publishDiagnostics(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// Diagnose runs the front half of the pipeline on document text and
// returns the diagnostics to publish. An empty slice means the document
// is clean and previous diagnostics should be cleared.
func Diagnose(filename, text string) []protocol.Diagnostic {
	program, parseErr := parser.ParseSource(filename, text)
	if parseErr != nil {
		return []protocol.Diagnostic{ConvertError(parseErr)}
	}
	if _, semErr := semantic.Analyze(program); semErr != nil {
		return []protocol.Diagnostic{ConvertError(semErr)}
	}
	return []protocol.Diagnostic{}
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
