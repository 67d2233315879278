// Package app wires the application's services together.
package app

import (
	"github.com/nfrund/marksweb/internal/activity"
	"github.com/nfrund/marksweb/internal/apiclient"
	"github.com/nfrund/marksweb/internal/config"
	"github.com/nfrund/marksweb/internal/handlers"
	"github.com/nfrund/marksweb/internal/pubsub"
	"github.com/samber/do/v2"
)

// NewContainer registers every service lazily on a fresh injector. Nothing is
// built until it is first invoked.
func NewContainer(cfg config.Provider) *do.RootScope {
	injector := do.New()

	do.ProvideValue[config.Provider](injector, cfg)
	do.Provide(injector, provideAPIClient)
	do.Provide(injector, provideBus)
	do.Provide(injector, provideFeed)
	do.Provide(injector, provideAuthHandler)
	do.Provide(injector, provideGradesHandler)

	return injector
}

func provideAPIClient(i do.Injector) (*apiclient.Client, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return apiclient.New(cfg.GetAPIBaseURL(), apiclient.WithTimeout(cfg.GetAPITimeout()))
}

func provideBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func provideFeed(i do.Injector) (*activity.Feed, error) {
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return nil, err
	}
	return activity.NewFeed(bus), nil
}

func provideAuthHandler(i do.Injector) (*handlers.AuthHandler, error) {
	api, err := do.Invoke[*apiclient.Client](i)
	if err != nil {
		return nil, err
	}
	return handlers.NewAuthHandler(api, do.MustInvoke[*activity.Feed](i)), nil
}

func provideGradesHandler(i do.Injector) (*handlers.GradesHandler, error) {
	api, err := do.Invoke[*apiclient.Client](i)
	if err != nil {
		return nil, err
	}
	return handlers.NewGradesHandler(api, do.MustInvoke[*activity.Feed](i)), nil
}
