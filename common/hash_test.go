// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 255}))
}

func TestHashLength(t *testing.T) {
	assert.Len(t, Sha256([]byte("lottery")), 32)
	assert.Len(t, Sha3Sum256([]byte("lottery")), 32)
	assert.NotEqual(t, Sha256([]byte("lottery")), Sha3Sum256([]byte("lottery")))
	r := Rimp160AfterSha256([]byte("lottery"))
	assert.Len(t, r[:], 20)
}

func TestSha2Sum(t *testing.T) {
	first := sha256.Sum256([]byte("lottery"))
	want := sha256.Sum256(first[:])
	assert.Equal(t, want, Sha2Sum([]byte("lottery")))
}
