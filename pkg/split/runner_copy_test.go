package split

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"
)

func TestCopyRunner_CreateDestIsIdempotent(t *testing.T) {
	runner := &CopyRunner{FS: memfs.New()}
	step := ExecutionStep{Operation: "create-dest", DestDir: "/out/adni_1/dicom"}

	require.NoError(t, runner.Run(step))
	require.NoError(t, runner.Run(step))

	st, err := runner.FS.Stat("/out/adni_1/dicom")
	require.NoError(t, err)
	require.True(t, st.IsDir())
}

func TestCopyRunner_SkipsBlankSubject(t *testing.T) {
	fs := memfs.New()
	runner := &CopyRunner{FS: fs}

	err := runner.Run(ExecutionStep{
		Operation: "copy-subject",
		Subject:   "   ",
		SourceDir: "/data",
		DestDir:   "/out/adni_1/dicom",
		PartIndex: 1,
	})
	require.NoError(t, err)

	entries, err := fs.ReadDir("/out")
	if err == nil {
		require.Empty(t, entries, "blank subject must not create anything")
	}
}

func TestCopyRunner_UnknownOperationIsIgnored(t *testing.T) {
	runner := &CopyRunner{FS: memfs.New()}
	err := runner.Run(ExecutionStep{Operation: "defragment-disk", Description: "nope"})
	require.NoError(t, err)
}

// End-to-end over an in-memory filesystem: plan five subjects into two parts
// and apply, then re-apply and check the second pass transfers nothing.
func TestCopyRunner_ApplyEndToEnd(t *testing.T) {
	fs := memfs.New()
	for _, f := range []struct{ path, content string }{
		{"/data/dicom/A/T1/scan1.dcm", "a1"},
		{"/data/dicom/A/T1/scan2.dcm", "a2"},
		{"/data/dicom/B/fMRI/scan.dcm", "b"},
		{"/data/dicom/C/scan.dcm", "c"},
		{"/data/dicom/D/scan.dcm", "d"},
		{"/data/dicom/E/DTI/scan.dcm", "e"},
	} {
		writeTestFile(t, fs, f.path, f.content)
	}

	opts := PlanOptions{
		SourceDir:      "/data/dicom",
		DestBase:       "/out",
		Parts:          2,
		CollectionName: "adni",
		SubdirName:     "dicom",
	}
	plan, err := PlanWithSystem(NewSystem(fs), opts)
	require.NoError(t, err)
	require.Len(t, plan.Parts, 2)

	runner := &CopyRunner{FS: fs}
	report, err := Apply(plan, opts, runner)
	require.NoError(t, err)
	require.Len(t, report.Parts, 2)

	require.Equal(t, "a1", readTestFile(t, fs, "/out/adni_1/dicom/A/T1/scan1.dcm"))
	require.Equal(t, "b", readTestFile(t, fs, "/out/adni_1/dicom/B/fMRI/scan.dcm"))
	require.Equal(t, "c", readTestFile(t, fs, "/out/adni_1/dicom/C/scan.dcm"))
	require.Equal(t, "d", readTestFile(t, fs, "/out/adni_2/dicom/D/scan.dcm"))
	require.Equal(t, "e", readTestFile(t, fs, "/out/adni_2/dicom/E/DTI/scan.dcm"))

	// Re-running must only compare metadata: every event is a skip.
	var copied int
	runner.Progress = func(ev ProgressEvent) {
		if !ev.Skipped {
			copied++
		}
	}
	_, err = Apply(plan, opts, runner)
	require.NoError(t, err)
	require.Zero(t, copied, "second apply must not transfer any data")
}
