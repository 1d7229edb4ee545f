//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupBuiltins(t *testing.T) {
	enron, ok := Lookup(NameEnron)
	assert.True(t, ok)
	assert.Equal(t, KindFlat, enron.Kind)
	assert.Equal(t, "filename", enron.KeyAttribute)
	assert.True(t, enron.FirstColumnFallback)

	realEstate, ok := Lookup(NameRealEstate)
	assert.True(t, ok)
	assert.Equal(t, KindFlat, realEstate.Kind)
	assert.Equal(t, "listing", realEstate.KeyAttribute)
	assert.False(t, realEstate.FirstColumnFallback)

	medical, ok := Lookup(NameMedicalSchemaMatching)
	assert.True(t, ok)
	assert.Equal(t, KindNested, medical.Kind)

	_, ok = Lookup("unknown-workload")
	assert.False(t, ok)
}

func TestRegister(t *testing.T) {
	Register(&Workload{
		Name:         "biofabric",
		Kind:         KindFlat,
		KeyAttribute: "specimen",
		IDAliases:    []string{"specimen", "id"},
		LabelAliases: []string{"label"},
	})
	defer delete(registry, "biofabric")

	w, ok := Lookup("biofabric")
	assert.True(t, ok)
	assert.Equal(t, "specimen", w.KeyAttribute)
	assert.Contains(t, Names(), "biofabric")

	// nil and unnamed registrations are ignored
	Register(nil)
	Register(&Workload{})
	_, ok = Lookup("")
	assert.False(t, ok)
}
