// Package storage journals in-flight spot request batches so that a batch
// abandoned by a crashed process can be reaped later.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
)

type Journal interface {
	Add(b *Batch) error
	Remove(id string) error
	List() ([]*Batch, error)
}

// Batch is one submitted set of spot requests.
type Batch struct {
	ID         string    `json:"ID"`
	RequestIDs []string  `json:"RequestIDs"`
	Names      []string  `json:"Names"`
	CreatedAt  time.Time `json:"CreatedAt"`
}

func NewBatchID() string {
	return uuid.New().String()
}

type RedisJournal struct {
	conn   func() redis.Conn
	Prefix string
}

func NewRedisJournal(url, prefix string) *RedisJournal {
	pool := &redis.Pool{
		MaxIdle:     2,
		IdleTimeout: 5 * time.Minute,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(url)
		},
	}

	return &RedisJournal{
		conn:   pool.Get,
		Prefix: prefix,
	}
}

func (j *RedisJournal) do(command string, args ...interface{}) (interface{}, error) {
	c := j.conn()
	defer c.Close()
	return c.Do(command, args...)
}

func (j *RedisJournal) Add(b *Batch) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}

	_, err = j.do("HSet", j.key("batches"), b.ID, string(data))
	return err
}

func (j *RedisJournal) Remove(id string) error {
	_, err := j.do("HDel", j.key("batches"), id)
	return err
}

// List returns journaled batches, oldest first.
func (j *RedisJournal) List() ([]*Batch, error) {
	reply, err := redis.StringMap(j.do("HGetAll", j.key("batches")))
	if err != nil {
		return nil, err
	}

	batches := []*Batch{}
	for id, data := range reply {
		b := &Batch{}
		if err := json.Unmarshal([]byte(data), b); err != nil {
			return nil, fmt.Errorf("batch %s: %w", id, err)
		}
		batches = append(batches, b)
	}
	sort.Slice(batches, func(a, b int) bool {
		return batches[a].CreatedAt.Before(batches[b].CreatedAt)
	})

	return batches, nil
}

func (j *RedisJournal) key(k string) string {
	return fmt.Sprintf("%s%s", j.Prefix, k)
}

// NopJournal is used when no Redis is configured.
type NopJournal struct{}

func (NopJournal) Add(*Batch) error        { return nil }
func (NopJournal) Remove(string) error     { return nil }
func (NopJournal) List() ([]*Batch, error) { return []*Batch{}, nil }
