package main

import (
	"fmt"
	"io"

	"github.com/sonnes/rssr/config"
	"github.com/sonnes/rssr/reader"
	"github.com/sonnes/rssr/reader/rss"
	"github.com/sonnes/rssr/render"
	jsonrender "github.com/sonnes/rssr/render/json"
	"github.com/sonnes/rssr/render/terminal"
	"github.com/sonnes/rssr/render/text"
)

// app holds the reader and renderer registry used by the root command.
type app struct {
	cfg       *config.Config
	renderers map[render.Format]func(w io.Writer) render.Renderer
}

func newApp(cfg *config.Config) *app {
	return &app{
		cfg: cfg,
		renderers: map[render.Format]func(w io.Writer) render.Renderer{
			render.FormatText:     func(w io.Writer) render.Renderer { return text.New(w) },
			render.FormatJSON:     func(w io.Writer) render.Renderer { return jsonrender.New(w) },
			render.FormatTerminal: func(w io.Writer) render.Renderer { return terminal.New(w) },
		},
	}
}

func (a *app) reader() reader.Reader {
	return rss.New(a.cfg.Timeout)
}

func (a *app) renderer(f render.Format, w io.Writer) (render.Renderer, error) {
	fn, ok := a.renderers[f]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", f)
	}
	return fn(w), nil
}
