package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestViolationPredicates(t *testing.T) {
	fk := &pq.Error{Code: "23503"}
	unique := &pq.Error{Code: "23505"}
	check := &pq.Error{Code: "23514"}

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(check))

	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsCheckViolation(fk))
}

func TestViolationPredicatesWrapped(t *testing.T) {
	wrapped := fmt.Errorf("inserting stock row: %w", &pq.Error{Code: "23505"})
	assert.True(t, IsUniqueViolation(wrapped))
}

func TestViolationPredicatesNonPQ(t *testing.T) {
	plain := errors.New("connection refused")
	assert.False(t, IsForeignKeyViolation(plain))
	assert.False(t, IsUniqueViolation(plain))
	assert.False(t, IsCheckViolation(plain))
	assert.False(t, IsUniqueViolation(nil))
}
