package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"mtgsalty/internal/domain/cards"
	"mtgsalty/internal/domain/counter"
	"mtgsalty/internal/infra/cards/scryfall"
	"mtgsalty/internal/infra/cardstore"
	"mtgsalty/internal/infra/config"
	"mtgsalty/internal/infra/deck/moxfield"
	"mtgsalty/internal/infra/llm/claude"
)

func provideClaudeClient(cfg *config.Config) (*claude.Client, error) {
	return claude.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideScryfallClient(cfg *config.Config) *scryfall.Client {
	return scryfall.NewClient(scryfall.Options{
		BaseURL:     cfg.Scryfall.BaseURL,
		MinInterval: cfg.Scryfall.MinInterval,
		Timeout:     cfg.Scryfall.Timeout,
		UserAgent:   cfg.Scryfall.UserAgent,
	})
}

func provideMoxfieldClient(cfg *config.Config) *moxfield.Client {
	return moxfield.NewClient(moxfield.Options{
		BaseURL:   cfg.Moxfield.BaseURL,
		Timeout:   cfg.Moxfield.Timeout,
		UserAgent: cfg.Moxfield.UserAgent,
	})
}

func provideCounterConfig(cfg *config.Config) counter.Config {
	return counter.Config{
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
	}
}

// provideCardLookup returns the raw client when the cache is disabled (the
// default), otherwise decorates it with a Valkey store, falling back to a
// memory store when Valkey is unreachable.
func provideCardLookup(cfg *config.Config, client *scryfall.Client, logger *slog.Logger) cards.Lookup {
	if !cfg.Cache.Enabled {
		return client
	}

	store := provideCardStore(cfg, logger)
	return cards.NewCachedLookup(client, store, cfg.Cache.TTL, logger)
}

func provideCardStore(cfg *config.Config, logger *slog.Logger) cards.Store {
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return cardstore.NewMemoryStore()
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return cardstore.NewMemoryStore()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		return cardstore.NewMemoryStore()
	}
	logger.Info("card valkey store enabled", "addr", cfg.Cache.Addr)
	return cardstore.NewValkeyStore(client, "card")
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Cache.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Cache.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Cache.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
