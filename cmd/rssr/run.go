package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/sonnes/rssr/core"
	"github.com/sonnes/rssr/reader"
	"github.com/sonnes/rssr/render"
)

// renderSources reads each source in order and drives it through rnd. A
// source that cannot be read is logged and skipped; Exit still runs so the
// feeds that did load are written.
//
// If ctx is canceled, renderSources returns without calling Exit.
func renderSources(ctx context.Context, rd reader.Reader, rnd render.Renderer, sources []string, transformers ...core.Transformer) error {
	failed := 0
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		f, err := rd.Read(ctx, src)
		if err == nil {
			err = core.Chain(f, transformers...)
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failed++
			log.Error("skipping feed", "source", src, "err", err)
			continue
		}

		render.Feed(rnd, f)
	}

	if err := rnd.Exit(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(sources))
	}
	return nil
}
