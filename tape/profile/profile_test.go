package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKnownProfiles(t *testing.T) {
	for _, name := range []string{"peak1", "edge1"} {
		p, ok := Get(name)
		assert.True(t, ok)
		assert.Equal(t, name, p.Name)
	}
}

func TestGetUnknownProfile(t *testing.T) {
	_, ok := Get("nonexistent")
	assert.False(t, ok)
}

func TestNamesIncludesDefault(t *testing.T) {
	assert.Contains(t, Names(), Default)
}

func TestDescribeMarksDefault(t *testing.T) {
	assert.Contains(t, Describe(Default), "default")
	assert.Empty(t, Describe("nonexistent"))
}
