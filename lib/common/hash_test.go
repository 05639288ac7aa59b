// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToHash(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		in       string
		expected Hash
		errWrap  error
	}{
		"valid": {
			in:       "0x8550326cee1e1b768a254095b412e0db58523c2b5df9b7d2540b4513d475ce7f",
			expected: Hash{0x85, 0x50, 0x32, 0x6c, 0xee, 0x1e, 0x1b, 0x76, 0x8a, 0x25, 0x40, 0x95, 0xb4, 0x12, 0xe0, 0xdb, 0x58, 0x52, 0x3c, 0x2b, 0x5d, 0xf9, 0xb7, 0xd2, 0x54, 0x0b, 0x45, 0x13, 0xd4, 0x75, 0xce, 0x7f}, //nolint:lll
		},
		"no prefix": {
			in:      "8550",
			errWrap: errNoPrefix,
		},
		"too short": {
			in:      "0x8550",
			errWrap: errInvalidLength,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := HexToHash(testCase.in)

			assert.ErrorIs(t, err, testCase.errWrap)
			assert.Equal(t, testCase.expected, h)
		})
	}
}

func TestHash_String(t *testing.T) {
	t.Parallel()

	h := Hash{0x01, 31: 0xff}
	assert.Equal(t, "0x01000000000000000000000000000000000000000000000000000000000000ff", h.String())
	assert.Equal(t, "0x01000000...000000ff", h.Short())
	assert.False(t, h.IsEmpty())
	assert.True(t, EmptyHash.IsEmpty())
}

func TestBlake2bHash(t *testing.T) {
	t.Parallel()

	h, err := Blake2bHash([]byte{})
	require.NoError(t, err)
	expected := MustHexToHash("0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8")
	assert.Equal(t, expected, h)
	assert.Equal(t, expected, MustBlake2bHash(nil))
}
