// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRangeWithBytesPrefix(t *testing.T) {
	tests := []struct {
		prefix []byte
		to     []byte
	}{
		{[]byte("a"), []byte("b")},
		{[]byte{0x01, 0xff}, []byte{0x02}},
		{[]byte{0xff, 0xff}, nil},
	}
	for _, tt := range tests {
		r := NewRangeWithBytesPrefix(tt.prefix)
		assert.Equal(t, tt.prefix, r.From)
		assert.Equal(t, tt.to, r.To)
	}
}
