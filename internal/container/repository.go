package container

import (
	"github.com/samber/do"
	"github.com/slinkhq/slink/internal/entry"
	"github.com/slinkhq/slink/internal/eviction"
	"github.com/slinkhq/slink/internal/kv"
	"github.com/slinkhq/slink/internal/lookup"
	"github.com/slinkhq/slink/internal/messaging"
	"github.com/slinkhq/slink/internal/slug"
	"github.com/slinkhq/slink/internal/timeindex"
	"go.uber.org/zap"
)

// RepositoryPackage provides the entry repository with its time index and
// eviction policy, plus the lookup dispatcher.
func RepositoryPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*timeindex.Index, error) {
		return timeindex.New(
			do.MustInvoke[kv.Store](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	do.Provide(injector, func(i *do.Injector) (*entry.Repository, error) {
		store := do.MustInvoke[kv.Store](i)
		index := do.MustInvoke[*timeindex.Index](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return entry.NewRepository(
			store,
			index,
			eviction.New(store, index, logger),
			slug.NewURLGenerator(),
			slug.NewNoteGenerator(),
			logger,
		), nil
	})

	do.Provide(injector, func(i *do.Injector) (*lookup.Dispatcher, error) {
		return lookup.NewDispatcher(
			do.MustInvoke[*entry.Repository](i),
			do.MustInvoke[messaging.Publish[lookup.EntryAccessedEvent]](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}
