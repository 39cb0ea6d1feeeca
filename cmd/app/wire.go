//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"mtgsalty/internal/bootstrap"
	"mtgsalty/internal/domain/cards"
	"mtgsalty/internal/domain/counter"
	"mtgsalty/internal/domain/deck"
	"mtgsalty/internal/infra/cards/scryfall"
	"mtgsalty/internal/infra/config"
	"mtgsalty/internal/infra/deck/moxfield"
	"mtgsalty/internal/infra/llm/claude"
	httpiface "mtgsalty/internal/interface/http"
	"mtgsalty/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideClaudeClient,
		provideScryfallClient,
		provideMoxfieldClient,
		provideCardLookup,
		provideCounterConfig,
		cards.NewService,
		deck.NewService,
		counter.NewService,
		wire.Bind(new(cards.Searcher), new(*scryfall.Client)),
		wire.Bind(new(deck.Source), new(*moxfield.Client)),
		wire.Bind(new(counter.ChatClient), new(*claude.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
