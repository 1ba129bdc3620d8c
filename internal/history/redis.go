package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RedisStore keeps the history in Redis sets:
//
//	<prefix>:weeks                  weeks with any record
//	<prefix>:hosts:<week>           hosts recorded in week
//	<prefix>:partners:<week>:<host> partners of host in week
//
// Week and host are written with '%' and ':' percent-encoded so one key
// can only belong to one week/host pair. Save only adds members; recorded
// pairs are never removed.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// OpenRedisStore connects and pings the server.
func OpenRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return NewRedisStore(client, opts.Prefix), nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = "pairup:history"
	}
	return &RedisStore{client: client, prefix: prefix}
}

var keyEscaper = strings.NewReplacer("%", "%25", ":", "%3A")

func (s *RedisStore) weeksKey() string { return s.prefix + ":weeks" }

func (s *RedisStore) hostsKey(week string) string {
	return s.prefix + ":hosts:" + keyEscaper.Replace(week)
}

func (s *RedisStore) partnersKey(week, host string) string {
	return s.prefix + ":partners:" + keyEscaper.Replace(week) + ":" + keyEscaper.Replace(host)
}

// Load reads every week into a Book.
func (s *RedisStore) Load(ctx context.Context) (*Book, error) {
	weeks, err := s.client.SMembers(ctx, s.weeksKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list history weeks: %w", err)
	}
	book := NewBook()
	for _, week := range weeks {
		hosts, err := s.client.SMembers(ctx, s.hostsKey(week)).Result()
		if err != nil {
			return nil, fmt.Errorf("list hosts for %s: %w", week, err)
		}
		for _, host := range hosts {
			partners, err := s.client.SMembers(ctx, s.partnersKey(week, host)).Result()
			if err != nil {
				return nil, fmt.Errorf("list partners of %s for %s: %w", host, week, err)
			}
			for _, partner := range partners {
				book.link(week, host, partner)
			}
		}
	}
	return book, nil
}

// Save adds every record in book inside one MULTI/EXEC.
func (s *RedisStore) Save(ctx context.Context, book *Book) error {
	doc := book.Document()
	if len(doc) == 0 {
		return nil
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for week, records := range doc {
			pipe.SAdd(ctx, s.weeksKey(), week)
			for _, rec := range records {
				pipe.SAdd(ctx, s.hostsKey(week), rec.Host)
				if len(rec.AlreadyPaired) == 0 {
					continue
				}
				members := make([]any, len(rec.AlreadyPaired))
				for i, partner := range rec.AlreadyPaired {
					members[i] = partner
				}
				pipe.SAdd(ctx, s.partnersKey(week, rec.Host), members...)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save history to redis: %w", err)
	}
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
