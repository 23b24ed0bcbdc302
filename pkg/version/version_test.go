package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/vogue/pkg/errors"
)

// TestParse tests the behavior of Parse.
//
// It verifies:
//   - Missing trailing components are padded with 0
//   - A "v" prefix and surrounding whitespace are ignored
//   - Pre-release and build qualifiers are stripped
//   - Components beyond the fourth are ignored
//   - A letter qualifier after a number ends the numeric run
//   - Strings without a leading number are malformed
//   - Empty or symbol-led segments are malformed rather than truncated
func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Version
	}{
		{"1", Version{1, 0, 0, 0}},
		{"1.2", Version{1, 2, 0, 0}},
		{"1.2.3", Version{1, 2, 3, 0}},
		{"1.2.3.4", Version{1, 2, 3, 4}},
		{" v2.0.1 ", Version{2, 0, 1, 0}},
		{"V3.1", Version{3, 1, 0, 0}},
		{"2.0.1-rc1", Version{2, 0, 1, 0}},
		{"1.0.0-beta.2+build.7", Version{1, 0, 0, 0}},
		{"31.1-jre", Version{31, 1, 0, 0}},
		{"5.3.20.RELEASE", Version{5, 3, 20, 0}},
		{"1.1pre", Version{1, 1, 0, 0}},
		{"4.1.100.Final", Version{4, 1, 100, 0}},
		{"1.2.3.4.5", Version{1, 2, 3, 4}},
		{"0.0.0.0", Version{}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, raw := range []string{"", "latest", "v", "-1.0", "x1.2", "1..2", "1.-2", "1.2.", ".1", "1.2.3.4.5.", "1._2"} {
		t.Run("malformed "+raw, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
			assert.True(t, errors.IsMalformedVersion(err))
		})
	}
}

// TestMustParse tests that MustParse panics on malformed input.
func TestMustParse(t *testing.T) {
	assert.Equal(t, Version{1, 2, 0, 0}, MustParse("1.2"))
	assert.Panics(t, func() { MustParse("nope") })
}

// TestVersionString tests rendering with all four components.
func TestVersionString(t *testing.T) {
	assert.Equal(t, "1.2.0.0", MustParse("1.2").String())
	assert.Equal(t, "10.20.30.40", Version{10, 20, 30, 40}.String())
}
