package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Freeeeeet/repair_bot/internal/clock"
	"github.com/google/uuid"
)

// MemoryStore - хранилище в памяти процесса. Используется в тестах и
// для запуска бота без базы (STORE_DRIVER=memory).
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string][]Record
	unique map[string][]string // table -> уникальные колонки
	clock  clock.Clock
}

// NewMemoryStore создаёт пустое хранилище
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		tables: make(map[string][]Record),
		unique: make(map[string][]string),
		clock:  clk,
	}
}

// WithUnique объявляет колонку уникальной (пустые значения не проверяются)
func (s *MemoryStore) WithUnique(table, column string) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unique[table] = append(s.unique[table], column)
	return s
}

// Seed кладёт записи в таблицу как есть, без проверок
func (s *MemoryStore) Seed(table string, records ...Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		s.tables[table] = append(s.tables[table], rec.Clone())
	}
}

func (s *MemoryStore) Select(ctx context.Context, table string, q Query) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Record
	for _, rec := range s.tables[table] {
		if !matches(rec, q.Filter) {
			continue
		}
		row := rec.Clone()
		for _, j := range q.Joins {
			row[j.Table] = s.joined(j, rec.String(j.LocalKey))
		}
		out = append(out, row)
	}

	if len(q.OrderBy) > 0 {
		sort.SliceStable(out, func(a, b int) bool {
			for _, o := range q.OrderBy {
				c := compareValues(out[a][o.Column], out[b][o.Column])
				if c == 0 {
					continue
				}
				if o.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}

	return out, nil
}

func (s *MemoryStore) SelectOne(ctx context.Context, table string, filter Filter) (Record, error) {
	records, err := s.Select(ctx, table, Query{Filter: filter})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("select one from %s: %w", table, ErrNotFound)
	}
	return records[0], nil
}

func (s *MemoryStore) Insert(ctx context.Context, table string, rec Record) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, col := range s.unique[table] {
		v := rec.String(col)
		if v == "" {
			continue
		}
		for _, existing := range s.tables[table] {
			if existing.String(col) == v {
				return nil, fmt.Errorf("insert into %s: %w: %s", table, ErrDuplicate, col)
			}
		}
	}

	row := rec.Clone()
	if row.String("id") == "" {
		row["id"] = uuid.NewString()
	}
	if _, ok := row["created_at"]; !ok {
		row["created_at"] = s.clock.Now()
	}

	s.tables[table] = append(s.tables[table], row)
	return row.Clone(), nil
}

func (s *MemoryStore) Update(ctx context.Context, table, id string, patch Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(patch) == 0 {
		return fmt.Errorf("update %s: empty patch", table)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.tables[table]
	for i, rec := range rows {
		if rec.String("id") != id {
			continue
		}
		updated := rec.Clone()
		for k, v := range patch {
			updated[k] = v
		}
		rows[i] = updated
		return nil
	}

	return fmt.Errorf("update %s %s: %w", table, id, ErrNotFound)
}

// joined возвращает проекцию присоединённой записи; вызывается под RLock
func (s *MemoryStore) joined(j Join, id string) Record {
	out := Record{}
	for _, rec := range s.tables[j.Table] {
		if rec.String("id") != id {
			continue
		}
		for _, col := range j.Columns {
			out[col] = rec[col]
		}
		break
	}
	return out
}

func matches(rec Record, filter Filter) bool {
	for _, eq := range filter {
		if fmt.Sprint(rec[eq.Column]) != fmt.Sprint(eq.Value) {
			return false
		}
	}
	return true
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		bv, _ := b.(time.Time)
		return av.Compare(bv)
	case string:
		bv, _ := b.(string)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}

	af, bf := Record{"v": a}.Float64("v"), Record{"v": b}.Float64("v")
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	}
	return 0
}
