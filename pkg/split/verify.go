package split

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// VerifyPart performs a structural sanity check of one copied part before we
// report success to the user: every regular file under each subject's source
// tree must be present at the destination with the same size. It deliberately
// does not checksum file contents; it is a cheap guard against truncated or
// missing files, not a cryptographic verification.
func VerifyPart(fs billy.Filesystem, sourceDir, destDir string, subjects []string) error {
	for _, subject := range subjects {
		if strings.TrimSpace(subject) == "" {
			continue
		}
		src := fs.Join(sourceDir, subject)
		dst := fs.Join(destDir, subject)

		err := util.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(src, path)
			if err != nil {
				return err
			}
			target := dst
			if rel != "." {
				target = fs.Join(dst, rel)
			}
			st, err := fs.Lstat(target)
			if err != nil {
				return fmt.Errorf("missing at destination: %s", target)
			}
			if st.Size() != info.Size() {
				return fmt.Errorf("size mismatch at %s: source %d bytes, destination %d bytes",
					target, info.Size(), st.Size())
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("verify failed for subject %s: %w", subject, err)
		}
	}
	return nil
}
