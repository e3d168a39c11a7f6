// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifiers(t *testing.T) {
	mods := Shift | Control
	assert.True(t, HasAnyModifier(mods, Alt, Control))
	assert.False(t, HasAnyModifier(mods, Alt, Meta))
	assert.True(t, HasAllModifiers(mods, Shift, Control))
	assert.False(t, HasAllModifiers(mods, Shift, Meta))
	assert.Equal(t, "Shift|Control", mods.ModifiersString())
	assert.Equal(t, "", Modifiers(0).String())
}

func TestModifierFromName(t *testing.T) {
	m, err := ModifierFromName("control")
	assert.NoError(t, err)
	assert.Equal(t, Control, m)

	m, err = ModifierFromName("Ctrl")
	assert.NoError(t, err)
	assert.Equal(t, Control, m)

	m, err = ModifierFromName("")
	assert.NoError(t, err)
	assert.Equal(t, Modifiers(0), m)

	_, err = ModifierFromName("hyper")
	assert.Error(t, err)
}
