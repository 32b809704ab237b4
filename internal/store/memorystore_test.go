package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "properties", "p1")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "properties", "p1", []byte(`{"name":"Elm House"}`)))

	data, err := s.Get(ctx, "properties", "p1")
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Elm House"}`, string(data))

	require.NoError(t, s.Delete(ctx, "properties", "p1"))
	_, err = s.Get(ctx, "properties", "p1")
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent document is not an error.
	require.NoError(t, s.Delete(ctx, "properties", "p1"))
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "users", "u1", []byte(`{"role":"tenant"}`)))

	data, err := s.Get(ctx, "users", "u1")
	require.NoError(t, err)
	data[len(data)-2] = 'X'

	again, err := s.Get(ctx, "users", "u1")
	require.NoError(t, err)
	require.JSONEq(t, `{"role":"tenant"}`, string(again))
}

func TestMemoryStoreQueryFilter(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "suggestions", "s1", []byte(`{"landlordUid":"l1","message":"fix gate"}`)))
	require.NoError(t, s.Put(ctx, "suggestions", "s2", []byte(`{"landlordUid":"l2","message":"paint fence"}`)))
	require.NoError(t, s.Put(ctx, "suggestions", "s3", []byte(`{"landlordUid":"l1","message":"new bins"}`)))

	docs, err := s.Query(ctx, "suggestions", &Filter{Field: "landlordUid", Equals: "l1"})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "s1", docs[0].ID)
	require.Equal(t, "s3", docs[1].ID)

	all, err := s.Query(ctx, "suggestions", nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	none, err := s.Query(ctx, "suggestions", &Filter{Field: "landlordUid", Equals: "l3"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMemoryStoreSubCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	parent := "properties"
	subA := Sub(parent, "p1", "joinRequests")
	subB := Sub(parent, "p2", "joinRequests")

	require.NoError(t, s.Put(ctx, parent, "p1", []byte(`{"name":"A"}`)))
	require.NoError(t, s.Put(ctx, subA, "r1", []byte(`{"email":"a@x.com"}`)))
	require.NoError(t, s.Put(ctx, subB, "r1", []byte(`{"email":"b@x.com"}`)))

	docs, err := s.Query(ctx, subA, nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.JSONEq(t, `{"email":"a@x.com"}`, string(docs[0].Data))

	// The parent collection never sees sub-collection documents.
	docs, err = s.Query(ctx, parent, nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "p1", docs[0].ID)
}
