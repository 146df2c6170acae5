package store

import (
	"path/filepath"
	"testing"
	"time"

	"go.etcd.io/bbolt"
	"textclean/internal/domain"
)

func openTestStore(t *testing.T) (*ResourceStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resources.db")
	st, err := NewResourceStore(path)
	if err != nil {
		t.Fatal(err)
	}
	return st, path
}

func TestResourceStore_PutGet(t *testing.T) {
	st, _ := openTestStore(t)
	defer st.Close()

	if _, ok, err := st.GetList("english"); err != nil || ok {
		t.Fatalf("expected missing list, got ok=%v err=%v", ok, err)
	}

	fetched := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	list := domain.StopwordList{
		Name:      "english",
		Words:     []string{"the", "and"},
		Source:    "http://example.test/en.txt",
		FetchedAt: fetched,
	}
	if err := st.PutList(list); err != nil {
		t.Fatal(err)
	}

	got, ok, err := st.GetList("english")
	if err != nil || !ok {
		t.Fatalf("expected list, got ok=%v err=%v", ok, err)
	}
	if got.Source != list.Source || len(got.Words) != 2 || !got.FetchedAt.Equal(fetched) {
		t.Errorf("unexpected list: %+v", got)
	}

	names, err := st.ListNames()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "english" {
		t.Errorf("expected [english], got %v", names)
	}
}

func TestResourceStore_PutRequiresName(t *testing.T) {
	st, _ := openTestStore(t)
	defer st.Close()

	if err := st.PutList(domain.StopwordList{Words: []string{"x"}}); err == nil {
		t.Error("expected error for unnamed list")
	}
}

func TestResourceStore_Clear(t *testing.T) {
	st, _ := openTestStore(t)
	defer st.Close()

	if err := st.PutList(domain.StopwordList{Name: "english", Words: []string{"the"}}); err != nil {
		t.Fatal(err)
	}
	if err := st.Clear(); err != nil {
		t.Fatal(err)
	}
	names, err := st.ListNames()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty cache, got %v", names)
	}
}

func TestResourceStore_SchemaMismatchClears(t *testing.T) {
	st, path := openTestStore(t)
	if err := st.PutList(domain.StopwordList{Name: "english", Words: []string{"the"}}); err != nil {
		t.Fatal(err)
	}
	version, err := st.SchemaVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("expected schema version %d, got %d", CurrentSchemaVersion, version)
	}

	// Pretend an older release wrote the file.
	err = st.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keySchemaVersion, []byte("0"))
	})
	if err != nil {
		t.Fatal(err)
	}
	st.Close()

	reopened, err := NewResourceStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	if _, ok, _ := reopened.GetList("english"); ok {
		t.Error("expected cache to be cleared after schema mismatch")
	}
	version, err = reopened.SchemaVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("expected schema version %d after migration, got %d", CurrentSchemaVersion, version)
	}
}

func TestResourceStore_PersistsAcrossOpen(t *testing.T) {
	st, path := openTestStore(t)
	if err := st.PutList(domain.StopwordList{Name: "english", Words: []string{"the"}}); err != nil {
		t.Fatal(err)
	}
	st.Close()

	reopened, err := NewResourceStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	if _, ok, _ := reopened.GetList("english"); !ok {
		t.Error("expected list to survive reopen")
	}
}
