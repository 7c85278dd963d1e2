package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type project struct {
	ID       int
	Category string
}

func projectCategory(p project) string { return p.Category }

func sampleFilter() *Filter[project] {
	return New(
		[]string{All, "AI", "Web", "Mobile"},
		[]project{{1, "AI"}, {2, "Web"}, {3, "AI"}},
		projectCategory,
	)
}

func TestFilter_AllIsIdentity(t *testing.T) {
	f := sampleFilter()
	require.NoError(t, f.SetActive("Web"))
	require.NoError(t, f.SetActive(All))

	want := []project{{1, "AI"}, {2, "Web"}, {3, "AI"}}
	if diff := cmp.Diff(want, f.Filtered()); diff != "" {
		t.Fatalf("Filtered() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_ScenarioAI(t *testing.T) {
	f := sampleFilter()
	require.NoError(t, f.SetActive("AI"))

	want := []project{{1, "AI"}, {3, "AI"}}
	if diff := cmp.Diff(want, f.Filtered()); diff != "" {
		t.Fatalf("Filtered() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_EveryDeclaredCategoryPreservesOrder(t *testing.T) {
	items := []project{{1, "Web"}, {2, "AI"}, {3, "Web"}, {4, "Mobile"}, {5, "Web"}, {6, "AI"}}
	f := New([]string{"AI", "Web", "Mobile"}, items, projectCategory)

	for _, c := range []string{"AI", "Web", "Mobile"} {
		require.NoError(t, f.SetActive(c))
		got := f.Filtered()
		lastID := 0
		for _, p := range got {
			assert.Equal(t, c, p.Category)
			assert.Greater(t, p.ID, lastID, "relative order broken for %s", c)
			lastID = p.ID
		}
		assert.Len(t, got, f.Count(c))
	}
}

func TestFilter_UnknownCategoryDoesNotMutate(t *testing.T) {
	f := sampleFilter()
	require.NoError(t, f.SetActive("Web"))

	err := f.SetActive("Desktop")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Equal(t, "Web", f.Active())
}

func TestFilter_NeverStale(t *testing.T) {
	f := sampleFilter()
	before := f.Filtered()
	require.NoError(t, f.SetActive("Web"))

	assert.Len(t, before, 3, "earlier result must not change")
	assert.Equal(t, []project{{2, "Web"}}, f.Filtered())
}

func TestFilter_CategoriesSentinelFirstNoDuplicates(t *testing.T) {
	f := New([]string{"AI", All, "Web", "AI"}, []project(nil), projectCategory)
	assert.Equal(t, []string{All, "AI", "Web"}, f.Categories())
	assert.Equal(t, All, f.Active())
	assert.Empty(t, f.Filtered())
}
