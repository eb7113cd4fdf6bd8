package grades

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreMissingFile(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "students.csv"))
	assert.Empty(t, st.Load())
}

func TestStoreToleratesBadTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	data := "Alice,90,not-a-grade,80\n\n,50\nBob\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	students := NewStore(path).Load()
	require.Len(t, students, 2)
	assert.Equal(t, "Alice", students[0].Name)
	assert.Equal(t, []float64{90, 80}, students[0].Grades, "unparsable grade tokens are dropped")
	assert.Equal(t, "Bob", students[1].Name)
	assert.Empty(t, students[1].Grades)
}

func TestStoreRewritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	st := NewStore(path)
	require.NoError(t, st.Save([]*Student{
		{Name: "Alice", Grades: []float64{90.5}},
		{Name: "Bob"},
	}))
	require.NoError(t, st.Save([]*Student{{Name: "Bob"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Bob\n", string(data))
}
