package database

import (
	"context"
	"fmt"

	"musea/config"

	"github.com/valkey-io/valkey-go"
)

type CacheClient valkey.Client

type Cache struct {
	General CacheClient
	Lookup  CacheClient
}

// Valkey database indexes. Lookup holds denormalized display names used for
// DTO enrichment; General is everything else.
const (
	GENERAL_CACHE_INDEX = iota
	LOOKUP_CACHE_INDEX
)

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.CacheAddress
	port := config.CachePort
	if address == "" || port == 0 {
		return log.Error("cache address or port is empty")
	}

	var cacheDB Cache

	var err error
	cacheDB.General, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    GENERAL_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create general valkey client", err)
	}

	cacheDB.Lookup, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    LOOKUP_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create lookup valkey client", err)
	}

	s.Cache = cacheDB

	return nil
}

// FlushAllCaches clears every cache database. Used before reseeding so stale
// display names do not survive a fresh seed.
func (s *DB) FlushAllCaches() error {
	log := s.log.Function("FlushAllCaches")

	ctx := context.Background()
	for _, client := range []CacheClient{s.Cache.General, s.Cache.Lookup} {
		if client == nil {
			continue
		}
		if err := client.Do(ctx, client.B().Flushall().Build()).Error(); err != nil {
			return log.Err("failed to flush cache database", err)
		}
	}

	log.Info("Flushed all cache databases")
	return nil
}
