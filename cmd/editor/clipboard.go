package main

import (
	"bytes"
	"errors"
	"log"

	"github.com/milk9111/tilegrid/levels"
	"golang.design/x/clipboard"
)

var errNoClipboard = errors.New("clipboard unavailable")

// clipboardBridge moves grids through the system clipboard as JSON text.
type clipboardBridge struct {
	ok bool
}

func newClipboardBridge() *clipboardBridge {
	if err := clipboard.Init(); err != nil {
		log.Printf("editor: clipboard disabled: %v", err)
		return &clipboardBridge{}
	}
	return &clipboardBridge{ok: true}
}

func (c *clipboardBridge) Copy(g *levels.Grid) error {
	if !c.ok {
		return errNoClipboard
	}
	var buf bytes.Buffer
	if err := levels.Encode(&buf, g); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, buf.Bytes())
	log.Printf("editor: copied %dx%d grid to clipboard", g.Width, g.Height)
	return nil
}

func (c *clipboardBridge) Paste(w, h int) (*levels.Grid, error) {
	if !c.ok {
		return nil, errNoClipboard
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil, errors.New("clipboard is empty")
	}
	return levels.Decode(bytes.NewReader(data), w, h)
}
