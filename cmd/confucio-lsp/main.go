// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"confucio/internal/lsp"
)

const lsName = "confucio"

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	commonlog.Configure(1, nil)

	confucioHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:            confucioHandler.Initialize,
		Initialized:           confucioHandler.Initialized,
		Shutdown:              confucioHandler.Shutdown,
		SetTrace:              confucioHandler.SetTrace,
		TextDocumentDidOpen:   confucioHandler.TextDocumentDidOpen,
		TextDocumentDidClose:  confucioHandler.TextDocumentDidClose,
		TextDocumentDidChange: confucioHandler.TextDocumentDidChange,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Confuc-IO LSP server", version)

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting Confuc-IO LSP server:", err)
		os.Exit(1)
	}
}
