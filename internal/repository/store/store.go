// Package store - тонкий адаптер к удалённому хранилищу записей.
//
// Хранилище оперирует безтиповыми записями (колонка -> значение) и
// поддерживает выборку с фильтром, join и сортировкой, вставку и
// обновление по id. Типизация записей живёт уровнем выше, в repository.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Record - одна строка таблицы. Колонки присоединённых таблиц лежат
// вложенной Record под именем присоединённой таблицы.
type Record map[string]any

// Eq - условие равенства колонки значению
type Eq struct {
	Column string
	Value  any
}

// Filter - набор условий, объединённых через AND
type Filter []Eq

// Join описывает присоединение внешней таблицы по внешнему ключу:
// <table>.<LocalKey> = <Table>.id
type Join struct {
	Table    string
	LocalKey string
	Columns  []string
}

// Order - сортировка по колонке
type Order struct {
	Column string
	Desc   bool
}

// Query - параметры выборки
type Query struct {
	Filter  Filter
	Joins   []Join
	OrderBy []Order
}

// Store - контракт хранилища записей
type Store interface {
	Select(ctx context.Context, table string, q Query) ([]Record, error)
	SelectOne(ctx context.Context, table string, filter Filter) (Record, error)
	Insert(ctx context.Context, table string, rec Record) (Record, error)
	Update(ctx context.Context, table, id string, patch Record) error
}

// Nested возвращает вложенную запись присоединённой таблицы
func (r Record) Nested(table string) Record {
	if v, ok := r[table].(Record); ok {
		return v
	}
	return Record{}
}

// Clone делает поверхностную копию записи (вложенные записи тоже копируются)
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if nested, ok := v.(Record); ok {
			out[k] = nested.Clone()
			continue
		}
		out[k] = v
	}
	return out
}
