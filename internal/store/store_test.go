package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/tpm/internal/project"
	"github.com/go-ports/tpm/internal/store"
)

func openStore(c *qt.C, dir string) *store.Store {
	c.Helper()
	st, err := store.Open(dir, nil)
	c.Assert(err, qt.IsNil)
	return st
}

func names(projects []project.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Name)
	}
	return out
}

// ---------------------------------------------------------------------------
// Open
// ---------------------------------------------------------------------------

func TestOpen_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("absent document yields an empty store", func(c *qt.C) {
		st := openStore(c, t.TempDir())
		c.Assert(st.Len(), qt.Equals, 0)
		c.Assert(st.Projects(), qt.HasLen, 0)
	})

	c.Run("existing document is read fully", func(c *qt.C) {
		dir := t.TempDir()
		doc := `[{"name":"alpha","path":"/tmp/alpha"},{"name":"beta","path":"/tmp/beta"}]`
		err := os.WriteFile(filepath.Join(dir, store.DocumentName), []byte(doc), 0o600)
		c.Assert(err, qt.IsNil)

		st := openStore(c, dir)
		c.Assert(st.Len(), qt.Equals, 2)
		p, err := st.Find("alpha")
		c.Assert(err, qt.IsNil)
		c.Assert(p.Path, qt.Equals, "/tmp/alpha")
	})
}

func TestOpen_CorruptDocument(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name string
		doc  string
	}{
		{"bad JSON", `{"name": "alpha"`},
		{"non-array top level", `{"projects": []}`},
		{"null top level", `null`},
		{"empty file", ``},
		{"wrong field types", `[{"name": 42, "path": "/tmp"}]`},
		{"empty name", `[{"name": "", "path": "/tmp"}]`},
		{"duplicate names", `[{"name":"a","path":"/x"},{"name":"a","path":"/y"}]`},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			dir := t.TempDir()
			err := os.WriteFile(filepath.Join(dir, store.DocumentName), []byte(tt.doc), 0o600)
			c.Assert(err, qt.IsNil)

			_, err = store.Open(dir, nil)
			c.Assert(err, qt.ErrorIs, store.ErrCorrupt)
		})
	}
}

// ---------------------------------------------------------------------------
// Add / Find
// ---------------------------------------------------------------------------

func TestAdd_HappyPath(t *testing.T) {
	c := qt.New(t)
	st := openStore(c, t.TempDir())

	c.Assert(st.Add(project.Project{Name: "beta", Path: "/b"}), qt.IsNil)
	c.Assert(st.Add(project.Project{Name: "alpha", Path: "/a"}), qt.IsNil)
	c.Assert(st.Len(), qt.Equals, 2)

	// Presentation order is alphabetical, independent of insertion order.
	c.Assert(names(st.Projects()), qt.DeepEquals, []string{"alpha", "beta"})
}

func TestAdd_DuplicateLeavesStoreUnchanged(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	st := openStore(c, dir)
	c.Assert(st.Add(project.Project{Name: "demo", Path: "/one"}), qt.IsNil)
	c.Assert(st.Save(), qt.IsNil)
	before, err := os.ReadFile(st.Path())
	c.Assert(err, qt.IsNil)

	err = st.Add(project.Project{Name: "demo", Path: "/two"})
	c.Assert(err, qt.ErrorIs, store.ErrDuplicate)
	c.Assert(st.Save(), qt.IsNil)

	after, err := os.ReadFile(st.Path())
	c.Assert(err, qt.IsNil)
	c.Assert(string(after), qt.Equals, string(before))
}

func TestFind_NotFound(t *testing.T) {
	c := qt.New(t)
	st := openStore(c, t.TempDir())
	_, err := st.Find("missing")
	c.Assert(err, qt.ErrorIs, store.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestUpdate_HappyPath(t *testing.T) {
	c := qt.New(t)
	st := openStore(c, t.TempDir())
	c.Assert(st.Add(project.Project{Name: "a", Path: "/a"}), qt.IsNil)
	c.Assert(st.Add(project.Project{Name: "b", Path: "/b"}), qt.IsNil)

	c.Run("rename keeps path", func(c *qt.C) {
		c.Assert(st.Update("a", "a2", ""), qt.IsNil)
		p, err := st.Find("a2")
		c.Assert(err, qt.IsNil)
		c.Assert(p.Path, qt.Equals, "/a")
	})

	c.Run("repoint keeps name", func(c *qt.C) {
		c.Assert(st.Update("b", "", "/b2"), qt.IsNil)
		p, err := st.Find("b")
		c.Assert(err, qt.IsNil)
		c.Assert(p.Path, qt.Equals, "/b2")
	})

	c.Run("rename to own name is a no-op", func(c *qt.C) {
		c.Assert(st.Update("b", "b", ""), qt.IsNil)
	})
}

func TestUpdate_FailurePath(t *testing.T) {
	c := qt.New(t)
	st := openStore(c, t.TempDir())
	c.Assert(st.Add(project.Project{Name: "a", Path: "/a"}), qt.IsNil)
	c.Assert(st.Add(project.Project{Name: "b", Path: "/b"}), qt.IsNil)

	c.Run("unknown name", func(c *qt.C) {
		err := st.Update("missing", "x", "")
		c.Assert(err, qt.ErrorIs, store.ErrNotFound)
	})

	c.Run("rename onto an existing record", func(c *qt.C) {
		err := st.Update("a", "b", "")
		c.Assert(err, qt.ErrorIs, store.ErrDuplicate)

		// Store unchanged.
		p, findErr := st.Find("a")
		c.Assert(findErr, qt.IsNil)
		c.Assert(p.Path, qt.Equals, "/a")
	})
}

// ---------------------------------------------------------------------------
// Remove
// ---------------------------------------------------------------------------

func TestRemove_MixedNamesRemovesOnlyExisting(t *testing.T) {
	c := qt.New(t)
	st := openStore(c, t.TempDir())
	c.Assert(st.Add(project.Project{Name: "a", Path: "/a"}), qt.IsNil)
	c.Assert(st.Add(project.Project{Name: "b", Path: "/b"}), qt.IsNil)
	c.Assert(st.Add(project.Project{Name: "c", Path: "/c"}), qt.IsNil)

	removed := st.Remove("a", "missing", "c", "also-missing")
	c.Assert(removed, qt.Equals, 2)
	c.Assert(st.Len(), qt.Equals, 1)
	c.Assert(names(st.Projects()), qt.DeepEquals, []string{"b"})

	// Idempotent: removing again finds nothing.
	c.Assert(st.Remove("a", "c"), qt.Equals, 0)
}

// ---------------------------------------------------------------------------
// Touch
// ---------------------------------------------------------------------------

func TestTouch_HappyPath(t *testing.T) {
	c := qt.New(t)
	st := openStore(c, t.TempDir())
	c.Assert(st.Add(project.Project{Name: "a", Path: "/a"}), qt.IsNil)

	c.Assert(st.Touch("a"), qt.IsNil)
	p, err := st.Find("a")
	c.Assert(err, qt.IsNil)
	c.Assert(p.LastOpened.IsZero(), qt.IsFalse)

	c.Assert(st.Touch("missing"), qt.ErrorIs, store.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Save / round-trip
// ---------------------------------------------------------------------------

func TestSave_RoundTrip(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()

	st := openStore(c, dir)
	c.Assert(st.Add(project.Project{Name: "demo", Path: "/tmp/demo"}), qt.IsNil)
	c.Assert(st.Add(project.Project{Name: "api", Path: "/tmp/api"}), qt.IsNil)
	c.Assert(st.Save(), qt.IsNil)

	reopened := openStore(c, dir)
	c.Assert(reopened.Len(), qt.Equals, 2)
	for _, want := range st.Projects() {
		got, err := reopened.Find(want.Name)
		c.Assert(err, qt.IsNil)
		c.Assert(got.Name, qt.Equals, want.Name)
		c.Assert(got.Path, qt.Equals, want.Path)
	}
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	c := qt.New(t)
	dir := filepath.Join(t.TempDir(), "nested", "tpm")

	st := openStore(c, dir)
	c.Assert(st.Add(project.Project{Name: "a", Path: "/a"}), qt.IsNil)
	c.Assert(st.Save(), qt.IsNil)

	_, err := os.Stat(filepath.Join(dir, store.DocumentName))
	c.Assert(err, qt.IsNil)
}

func TestSave_EmptyStoreWritesEmptyArray(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()

	st := openStore(c, dir)
	c.Assert(st.Save(), qt.IsNil)

	data, err := os.ReadFile(st.Path())
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, "[]\n")
}

func TestSave_LoadThenSaveIsByteIdentical(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()

	st := openStore(c, dir)
	c.Assert(st.Add(project.Project{Name: "beta", Path: "/b"}), qt.IsNil)
	c.Assert(st.Add(project.Project{Name: "alpha", Path: "/a"}), qt.IsNil)
	c.Assert(st.Save(), qt.IsNil)
	before, err := os.ReadFile(st.Path())
	c.Assert(err, qt.IsNil)

	reopened := openStore(c, dir)
	c.Assert(reopened.Save(), qt.IsNil)
	after, err := os.ReadFile(st.Path())
	c.Assert(err, qt.IsNil)

	c.Assert(string(after), qt.Equals, string(before))
}

func TestSave_WritesCompletionNamesFile(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()

	st := openStore(c, dir)
	c.Assert(st.Add(project.Project{Name: "zeta", Path: "/z"}), qt.IsNil)
	c.Assert(st.Add(project.Project{Name: "alpha", Path: "/a"}), qt.IsNil)
	c.Assert(st.Save(), qt.IsNil)

	data, err := os.ReadFile(filepath.Join(dir, store.NamesFileName))
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, "alpha\nzeta\n")

	st.Remove("alpha", "zeta")
	c.Assert(st.Save(), qt.IsNil)
	data, err = os.ReadFile(filepath.Join(dir, store.NamesFileName))
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, "")
}

func TestSave_PreservesInsertionOrderOnDisk(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()

	st := openStore(c, dir)
	c.Assert(st.Add(project.Project{Name: "zeta", Path: "/z"}), qt.IsNil)
	c.Assert(st.Add(project.Project{Name: "alpha", Path: "/a"}), qt.IsNil)
	c.Assert(st.Save(), qt.IsNil)

	data, err := os.ReadFile(st.Path())
	c.Assert(err, qt.IsNil)
	var onDisk []project.Project
	c.Assert(json.Unmarshal(data, &onDisk), qt.IsNil)
	c.Assert(names(onDisk), qt.DeepEquals, []string{"zeta", "alpha"})
}

// ---------------------------------------------------------------------------
// Scenario
// ---------------------------------------------------------------------------

func TestScenario_AddEditDeleteLifecycle(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()

	st := openStore(c, dir)
	c.Assert(st.Add(project.Project{Name: "demo", Path: "/tmp/demo"}), qt.IsNil)
	c.Assert(st.Save(), qt.IsNil)
	c.Assert(names(openStore(c, dir).Projects()), qt.DeepEquals, []string{"demo"})

	st = openStore(c, dir)
	c.Assert(st.Update("demo", "demo2", ""), qt.IsNil)
	c.Assert(st.Save(), qt.IsNil)
	c.Assert(names(openStore(c, dir).Projects()), qt.DeepEquals, []string{"demo2"})

	st = openStore(c, dir)
	c.Assert(st.Remove("demo2"), qt.Equals, 1)
	c.Assert(st.Save(), qt.IsNil)
	c.Assert(openStore(c, dir).Len(), qt.Equals, 0)
}
