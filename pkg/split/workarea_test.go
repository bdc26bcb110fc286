package split

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkArea_WriteAndCleanup(t *testing.T) {
	work, err := NewWorkArea()
	require.NoError(t, err)
	dir := work.Dir()

	plan := twoPartPlan()
	require.NoError(t, work.WriteListing(plan.Subjects))
	require.NoError(t, work.WritePlan(plan))

	listing, err := os.ReadFile(filepath.Join(dir, "subjects.txt"))
	require.NoError(t, err)
	require.Equal(t, "A\nB\nC\nD\nE\n", string(listing))

	part2, err := os.ReadFile(filepath.Join(dir, "part_2.txt"))
	require.NoError(t, err)
	require.Equal(t, "D\nE\n", string(part2))

	require.NoError(t, work.Close())
	_, err = os.Stat(dir)
	require.True(t, os.IsNotExist(err), "working area must be removed on close")
}

func TestWorkArea_CloseTwice(t *testing.T) {
	work, err := NewWorkArea()
	require.NoError(t, err)
	require.NoError(t, work.Close())
	require.NoError(t, work.Close())
}
