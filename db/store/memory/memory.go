package memory

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	"github.com/richcrm/richcrm/db/store"
)

// Store implements store.Store with in-memory tables. It is used
// by tests and local runs; records go through the same
// attributevalue marshalling as the DynamoDB store so dynamodbav
// tags behave identically in both.
type Store struct {
	mu     sync.RWMutex
	tables map[string]map[string]map[string]types.AttributeValue
}

func New() *Store {
	return &Store{
		tables: map[string]map[string]map[string]types.AttributeValue{},
	}
}

func keyOf(key map[string]types.AttributeValue) string {
	names := make([]string, 0, len(key))
	for name := range key {
		names = append(names, name)
	}
	sort.Strings(names)

	id := ""
	for _, name := range names {
		id += fmt.Sprintf("%s=%v;", name, key[name])
	}
	return id
}

func (s *Store) Get(ctx context.Context, table string, key map[string]interface{}, out interface{}) error {
	k, err := attributevalue.MarshalMap(key)
	if err != nil {
		return errors.Wrap(err, "failed to marshal key")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.tables[table][keyOf(k)]
	if !ok {
		return store.ErrNotFound
	}

	return attributevalue.UnmarshalMap(item, out)
}

func (s *Store) Scan(ctx context.Context, table string, filter map[string]interface{}, out interface{}) error {
	f, err := attributevalue.MarshalMap(filter)
	if err != nil {
		return errors.Wrap(err, "failed to marshal filter")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []map[string]types.AttributeValue{}
	for _, item := range s.tables[table] {
		if matchesFilter(item, f) {
			matches = append(matches, item)
		}
	}

	return attributevalue.UnmarshalListOfMaps(matches, out)
}

func matchesFilter(item, filter map[string]types.AttributeValue) bool {
	for name, want := range filter {
		got, ok := item[name]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func (s *Store) Put(ctx context.Context, table string, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return errors.Wrap(err, "failed to marshal item")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[table]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		s.tables[table] = t
	}

	t[keyOf(primaryKey(table, av))] = av
	return nil
}

func (s *Store) Update(ctx context.Context, table string, key map[string]interface{}, set map[string]interface{}) error {
	k, err := attributevalue.MarshalMap(key)
	if err != nil {
		return errors.Wrap(err, "failed to marshal key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.tables[table][keyOf(k)]
	if !ok {
		return store.ErrNotFound
	}

	for name, value := range set {
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal attribute %v", name)
		}
		item[name] = av
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, table string, key map[string]interface{}) error {
	k, err := attributevalue.MarshalMap(key)
	if err != nil {
		return errors.Wrap(err, "failed to marshal key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tables[table], keyOf(k))
	return nil
}

// tableKeys names the primary key attribute of each known table.
// The in-memory store has no schema registry, so the key layout
// lives here.
var tableKeys = map[string]string{
	"TaskTemplate": "TTID",
	"Template":     "TemplateTitle",
}

func primaryKey(table string, item map[string]types.AttributeValue) map[string]types.AttributeValue {
	name, ok := tableKeys[table]
	if !ok {
		return item
	}
	return map[string]types.AttributeValue{name: item[name]}
}
