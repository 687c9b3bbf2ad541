package village

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	ref, ok := Derive("House No. 45, Near Temple, Village C, District Nashik")
	assert.True(t, ok)
	assert.Equal(t, "Village C", ref.Name)
	assert.Equal(t, "COM-103", ref.ID)
}

func TestDeriveLetters(t *testing.T) {
	ref, ok := Derive("Block 2, Village A")
	assert.True(t, ok)
	assert.Equal(t, "COM-101", ref.ID)

	ref, ok = Derive("Village D, West Zone")
	assert.True(t, ok)
	assert.Equal(t, "COM-104", ref.ID)
}

func TestDeriveNoMatch(t *testing.T) {
	for _, addr := range []string{
		"",
		"12 Market Road, Nashik",
		"Village lane 4", // lowercase letter, no match
	} {
		_, ok := Derive(addr)
		assert.False(t, ok, "address %q", addr)
	}
}

func TestDeriveFirstToken(t *testing.T) {
	ref, ok := Derive("Village B, formerly Village A")
	assert.True(t, ok)
	assert.Equal(t, "Village B", ref.Name)
	assert.Equal(t, "COM-102", ref.ID)
}
