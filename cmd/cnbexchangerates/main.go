package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hhanova/component-cnb-exchange-rates/internals/adapter/cache"
	"github.com/hhanova/component-cnb-exchange-rates/internals/adapter/cnbapi"
	"github.com/hhanova/component-cnb-exchange-rates/internals/config"
	"github.com/hhanova/component-cnb-exchange-rates/internals/core/domain"
	"github.com/hhanova/component-cnb-exchange-rates/internals/output"
	"github.com/hhanova/component-cnb-exchange-rates/internals/repository"
	"github.com/hhanova/component-cnb-exchange-rates/internals/service"
)

// The fixing is declared in Prague; "today" follows that clock.
const referenceTimezone = "Europe/Prague"

// Exit codes follow the host contract: 1 for user-correctable failures,
// 2 for everything unexpected.
const (
	exitUserError = 1
	exitAppError  = 2
)

func main() {
	log.Println("Starting CNB Exchange Rates extractor...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		os.Exit(exitAppError)
	}

	action, params, err := config.LoadParameters(filepath.Join(cfg.DataDir, "config.json"))
	if err != nil {
		log.Printf("Failed to load component parameters: %v", err)
		os.Exit(exitUserError)
	}

	switch action {
	case config.ActionListCurrencies:
		if err := listCurrencies(); err != nil {
			log.Printf("Failed to list currencies: %v", err)
			os.Exit(exitAppError)
		}
	case config.ActionRun:
		run(cfg, params)
	default:
		log.Printf("Unknown action %q", action)
		os.Exit(exitUserError)
	}
}

// listCurrencies prints the embedded catalog as the sync-action JSON the
// host renders into a select element.
func listCurrencies() error {
	encoder := json.NewEncoder(os.Stdout)
	return encoder.Encode(domain.ListCurrencies())
}

func run(cfg *config.Config, params *config.Parameters) {
	runID := uuid.NewString()
	log.Printf("Run %s started", runID)

	runParams, err := service.ParseRunParameters(params)
	if err != nil {
		log.Printf("Run %s: invalid parameters: %v", runID, err)
		os.Exit(exitUserError)
	}

	var feedCache cache.Cache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		feedCache = cache.NewRedisCache(client, cfg.FeedCacheTTL)
	}

	apiClient := cnbapi.NewClient(cfg.FeedURL, cfg.FetchTimeout, cnbapi.RetryPolicy{MaxAttempts: cfg.MaxFetchAttempts})
	feedRepo := repository.NewCachedFeedRepository(apiClient, feedCache)
	rateService := service.NewRateService(feedRepo)

	table, err := rateService.BuildRatesTable(context.Background(), runParams, referenceDate())
	if err != nil {
		log.Printf("Run %s failed: %v", runID, err)
		if isUserError(err) {
			os.Exit(exitUserError)
		}
		os.Exit(exitAppError)
	}

	writer := output.NewTableWriter(cfg.DataDir)
	tablePath, err := writer.WriteRatesTable(table, params.Incremental)
	if err != nil {
		log.Printf("Run %s: failed to write output: %v", runID, err)
		os.Exit(exitAppError)
	}

	log.Printf("Run %s finished: wrote %d rows to %s", runID, len(table), tablePath)
}

// referenceDate is today's calendar date on the Prague clock, without a
// time component.
func referenceDate() time.Time {
	loc, err := time.LoadLocation(referenceTimezone)
	if err != nil {
		log.Printf("Failed to load timezone %s, falling back to UTC: %v", referenceTimezone, err)
		loc = time.UTC
	}

	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func isUserError(err error) bool {
	for _, userErr := range []error{
		service.ErrUnknownDateMode,
		service.ErrInvalidDateFormat,
		service.ErrDateFromNotBeforeTo,
		service.ErrDateFromInFuture,
		service.ErrNoCurrencySelected,
		service.ErrUnknownCurrency,
		service.ErrNoDataFetched,
	} {
		if errors.Is(err, userErr) {
			return true
		}
	}
	return false
}
