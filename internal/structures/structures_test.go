package structures

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnsupported(t *testing.T) {
	_, _, err := New("btree", Config{Capacity: 100, FPRate: 0.01})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported structure "btree"`)
}

func TestNewInvalidConfig(t *testing.T) {
	t.Run("negative capacity", func(t *testing.T) {
		_, _, err := New(NameHashSet, Config{Capacity: -1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "capacity")
	})

	t.Run("zero fp_rate for bloom", func(t *testing.T) {
		_, _, err := New(NameBloom, Config{Capacity: 100})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fp_rate")
	})

	t.Run("fp_rate ignored by hashset", func(t *testing.T) {
		_, _, err := New(NameHashSet, Config{Capacity: 100})
		assert.NoError(t, err)
	})
}

func TestNewKinds(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{name: NameHashSet, want: KindExact},
		{name: NameBloom, want: KindNoFalseNegative},
		{name: NameBlockedBloom, want: KindNoFalseNegative},
		{name: NameCuckoo, want: KindApproximate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, kind, err := New(tt.name, Config{Capacity: 100, FPRate: 0.01})
			require.NoError(t, err)
			require.NotNil(t, m)
			assert.Equal(t, tt.want, kind)

			got, err := KindOf(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := KindOf("btree")
	assert.Error(t, err)
}

func TestHashSetExact(t *testing.T) {
	m, _, err := New(NameHashSet, Config{Capacity: 1000})
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		m.Add(fmt.Sprintf("member_%d", i))
	}

	for i := 0; i < 1000; i++ {
		assert.True(t, m.Contains(fmt.Sprintf("member_%d", i)))
	}
	for i := 0; i < 1000; i++ {
		assert.False(t, m.Contains(fmt.Sprintf("stranger_%d", i)))
	}
}

func TestAllStructuresFindAddedEntries(t *testing.T) {
	const n = 1000

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			// Double capacity keeps the cuckoo filter far from full,
			// so even it must retain every entry here.
			m, _, err := New(name, Config{Capacity: 2 * n, FPRate: 0.01})
			require.NoError(t, err)

			for i := 0; i < n; i++ {
				m.Add(fmt.Sprintf("member_%d", i))
			}
			for i := 0; i < n; i++ {
				require.True(t, m.Contains(fmt.Sprintf("member_%d", i)), "entry %d not found", i)
			}
		})
	}
}

func TestBloomFalsePositiveRate(t *testing.T) {
	const (
		n          = 10000
		testCount  = 100000
		targetRate = 0.01
	)

	for _, name := range []string{NameBloom, NameBlockedBloom} {
		t.Run(name, func(t *testing.T) {
			m, _, err := New(name, Config{Capacity: n, FPRate: targetRate})
			require.NoError(t, err)

			for i := 0; i < n; i++ {
				m.Add(fmt.Sprintf("member_%d", i))
			}
			for i := 0; i < n; i++ {
				require.True(t, m.Contains(fmt.Sprintf("member_%d", i)), "added entry must be found")
			}

			falsePositives := 0
			for i := 0; i < testCount; i++ {
				if m.Contains(fmt.Sprintf("stranger_%d", i)) {
					falsePositives++
				}
			}

			empirical := float64(falsePositives) / float64(testCount)
			// Allow generous variance over the configured target.
			assert.Less(t, empirical, 5*targetRate, "empirical FP rate %f too far above target", empirical)
			t.Logf("%s empirical FP rate: %.4f%% (%d/%d)", name, empirical*100, falsePositives, testCount)
		})
	}
}

func TestCuckooRejectsStrangersMostly(t *testing.T) {
	const n = 5000

	m, _, err := New(NameCuckoo, Config{Capacity: 2 * n})
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		m.Add(fmt.Sprintf("member_%d", i))
	}

	falsePositives := 0
	for i := 0; i < n; i++ {
		if m.Contains(fmt.Sprintf("stranger_%d", i)) {
			falsePositives++
		}
	}

	// The fingerprint table confuses a stranger with a member only
	// rarely; anything close to half would mean lookups are broken.
	assert.Less(t, float64(falsePositives)/float64(n), 0.1)
}
