package namegen

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialName(t *testing.T) {
	assert.Equal(t, "user0", SequentialName(0))
	assert.Equal(t, "user1", SequentialName(1))
	assert.Equal(t, "user199", SequentialName(199))
}

func TestAdjNounName(t *testing.T) {
	tests := []struct {
		name string
		i    int
		want string
	}{
		{
			name: "first entry",
			i:    0,
			want: "swift_tiger_0",
		},
		{
			name: "adjective wraps before noun",
			i:    15,
			want: "mighty_otter_15",
		},
		{
			name: "vocabulary repeats after 64",
			i:    64,
			want: "swift_tiger_64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdjNounName(tt.i))
		})
	}
}

func TestRandomishNameFormat(t *testing.T) {
	format := regexp.MustCompile(`^[a-z0-9]{6}_\d+$`)

	for _, i := range []int{0, 1, 7, 999, 123456} {
		name := RandomishName(i, 42)
		assert.Regexp(t, format, name)
		assert.True(t, strings.HasSuffix(name, "_"+strconv.Itoa(i)), "index suffix in %q", name)
	}
}

func TestRandomishNameDeterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Equal(t, RandomishName(i, 42), RandomishName(i, 42))
	}
}

func TestMixedNameDelegates(t *testing.T) {
	const seed = 42

	for i := 0; i < 200; i++ {
		name := MixedName(i, seed)
		candidates := []string{
			SequentialName(i),
			AdjNounName(i),
			RandomishName(i, seed),
		}
		assert.Contains(t, candidates, name)
	}
}

func TestMixedNameDeterministic(t *testing.T) {
	for i := 0; i < 200; i++ {
		assert.Equal(t, MixedName(i, 123), MixedName(i, 123))
	}
}

func TestMixedNameUnique(t *testing.T) {
	seen := make(map[string]int, 5000)
	for i := 0; i < 5000; i++ {
		name := MixedName(i, 42)
		prev, dup := seen[name]
		require.False(t, dup, "index %d produced %q, already produced by index %d", i, name, prev)
		seen[name] = i
	}
}

func TestNoSchemeProducesFakePrefix(t *testing.T) {
	// The query generator reserves the fake_ prefix for absent
	// usernames. Sequential names start with "user", adjnoun names
	// with a vocabulary adjective, and randomish names place their
	// first underscore after six characters, so none can collide.
	for _, scheme := range Schemes() {
		t.Run(scheme, func(t *testing.T) {
			for _, seed := range []uint64{0, 1, 42, 123} {
				for i := 0; i < 2000; i++ {
					name, err := Name(scheme, i, seed)
					require.NoError(t, err)
					require.False(t, strings.HasPrefix(name, "fake_"), "scheme %s index %d produced %q", scheme, i, name)
				}
			}
		})
	}
}

func TestLookupUnknownScheme(t *testing.T) {
	_, err := Lookup("telephone")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScheme)
	assert.Contains(t, err.Error(), "telephone")
}

func TestSchemesListsAll(t *testing.T) {
	got := Schemes()
	assert.Equal(t, []string{"sequential", "adjnoun", "randomish", "mixed"}, got)

	for _, s := range got {
		_, err := Lookup(s)
		assert.NoError(t, err)
	}
}
