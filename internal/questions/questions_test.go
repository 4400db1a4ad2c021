package questions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.yml")
	content := `questions:
  gender:
    - "Man"
    - "Woman"
    - "Other"
  year:
    - "Freshman"
    - "Senior"
  shirtSize:
    - "S"
    - "M"
    - "L"
  dietaryRestriction:
    - "None"
    - "Vegan"
    - "Other"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := Load(path)
	require.NoError(t, err)

	set := store.Current()
	assert.Equal(t, []string{"Man", "Woman", "Other"}, set.Gender)
	assert.Equal(t, []string{"Freshman", "Senior"}, set.Year)
	assert.Equal(t, []string{"S", "M", "L"}, set.ShirtSize)
	assert.Equal(t, []string{"None", "Vegan", "Other"}, set.DietaryRestriction)
	assert.Empty(t, set.TeamPlan)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestContains(t *testing.T) {
	allowed := []string{"None", "Vegan", "Other"}

	assert.True(t, Contains(allowed, "Vegan"))
	assert.True(t, Contains(allowed, Other))
	assert.False(t, Contains(allowed, "vegan"))
	assert.False(t, Contains(allowed, ""))
	assert.False(t, Contains(nil, "None"))
}

func TestStore_Replace(t *testing.T) {
	store := NewStore(&Set{Gender: []string{"Man"}})

	next := &Set{Gender: []string{"Man", "Woman"}}
	store.replace(next)

	assert.Same(t, next, store.Current())
}
