package handlers_test

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"acs/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory database.Store used by the handler tests.
// Filters support exact matches, $or, and case-insensitive regex
// conditions, which is all the handlers produce.
type fakeStore struct {
	mu      sync.Mutex
	colls   map[string][]bson.M
	failErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{colls: map[string][]bson.M{}}
}

func (s *fakeStore) CreateDocument(_ context.Context, collection string, entity interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return "", s.failErr
	}

	data, err := bson.Marshal(entity)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}

	id := primitive.NewObjectID()
	doc["_id"] = id
	s.colls[collection] = append(s.colls[collection], doc)
	return id.Hex(), nil
}

func (s *fakeStore) GetDocuments(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, s.failErr
	}

	var out []bson.M
	for _, doc := range s.colls[collection] {
		if docMatches(doc, filter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *fakeStore) GetDocumentByID(_ context.Context, collection string, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	for _, doc := range s.colls[collection] {
		if doc["_id"] == oid {
			return doc, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (s *fakeStore) Ping(context.Context) error { return s.failErr }

func (s *fakeStore) CollectionNames(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	names := make([]string, 0, len(s.colls))
	for name := range s.colls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *fakeStore) DatabaseName() string { return "community_services_test" }

func (s *fakeStore) Disconnect(context.Context) error { return nil }

func (s *fakeStore) count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.colls[collection])
}

func docMatches(doc, filter bson.M) bool {
	for key, cond := range filter {
		if key == "$or" {
			branches, ok := cond.([]bson.M)
			if !ok {
				return false
			}
			matched := false
			for _, branch := range branches {
				if docMatches(doc, branch) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
			continue
		}
		if !valueMatches(doc[key], cond) {
			return false
		}
	}
	return true
}

func valueMatches(val, cond interface{}) bool {
	switch c := cond.(type) {
	case primitive.Regex:
		re := regexp.MustCompile("(?i)" + c.Pattern)
		switch v := val.(type) {
		case string:
			return re.MatchString(v)
		case primitive.A:
			for _, elem := range v {
				if s, ok := elem.(string); ok && re.MatchString(s) {
					return true
				}
			}
			return false
		default:
			return false
		}
	default:
		return val == cond
	}
}
