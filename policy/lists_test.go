package policy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/auditkit/ossaudit/hamlet"
	"github.com/auditkit/ossaudit/policy"
)

func TestAbsentListLoadsAsEmpty(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, err := policy.LoadList("approved", "")
	must_be.Nil(err)
	must_be.Equal(0, sut.Size())
	must_be.Equal("approved", sut.Name())
}

func TestBothListShapesLoad(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	mapping := listFrom(t, "mapping", "one.pkg:1.0:\n  resolution: fine\nother.pkg:2.0:\n")
	must_be.Equal(2, mapping.Size())

	sequence := listFrom(t, "sequence", "- one:pkg:1.0\n- other:pkg:2.0\n- one:pkg:1.0\n")
	must_be.Equal(2, sequence.Size())
}

func TestUnreadableListIsFatal(t *testing.T) {
	_, wont_be := hamlet.Specifications(t)

	_, err := policy.LoadList("denied", filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	wont_be.Nil(err)
}

func TestGarbageListDocumentIsFatal(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	filename := filepath.Join(t.TempDir(), "garbage.yaml")
	must_be.Nil(os.WriteFile(filename, []byte("\tnot: yaml at all\n"), 0o640))
	_, err := policy.LoadList("denied", filename)
	wont_be.Nil(err)
}
