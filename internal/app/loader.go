package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/five82/itemdeck/internal/catalog"
	"github.com/five82/itemdeck/internal/state"
)

// StartLoader fetches the catalog once in the background and records the
// outcome in the store. It returns immediately; the returned channel closes
// when the load has finished.
func StartLoader(ctx context.Context, store *state.Store, source catalog.Source, log zerolog.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		load(ctx, store, source, log)
	}()
	return done
}

func load(ctx context.Context, store *state.Store, source catalog.Source, log zerolog.Logger) {
	store.Begin()
	items, err := source.FetchCatalog(ctx)
	if err != nil {
		if !store.Resolve(nil, err) {
			return
		}
		log.Error().Err(err).Msg("catalog load failed")
		return
	}
	if !store.Resolve(items, nil) {
		return
	}
	snap := store.Snapshot()
	log.Info().Int("items", len(items)).Dur("elapsed", snap.Elapsed()).Msg("catalog loaded")
}
