package anydb

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aerth/readnum/ncode"
	"go.etcd.io/bbolt"
)

type item struct {
	Seq  uint64 `json:"seq"`
	Name string `json:"name"`
}

func openTest(t *testing.T) *bbolt.DB {
	t.Helper()
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	if err != nil {
		t.Fatalf("bbolt.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Update(func(tx *bbolt.Tx) error { return ResetTx(tx, "items") }); err != nil {
		t.Fatalf("ResetTx: %v", err)
	}
	return db
}

func TestAppendEach(t *testing.T) {
	db := openTest(t)
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{"a", "b", "c"} {
			if _, err := AppendTx(tx, "items", func(seq uint64) item { return item{seq, name} }); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("AppendTx: %v", err)
	}
	var got []item
	err = db.View(func(tx *bbolt.Tx) error {
		return EachTx(tx, "items", func(k []byte, v item) error {
			if ncode.B2N(k) != v.Seq {
				t.Errorf("key %x holds seq %d", k, v.Seq)
			}
			got = append(got, v)
			return nil
		})
	})
	if err != nil {
		t.Fatalf("EachTx: %v", err)
	}
	if len(got) != 3 || got[0].Name != "a" || got[2].Name != "c" || got[0].Seq != 1 {
		t.Fatalf("EachTx = %+v", got)
	}

	v, err := Fetch[item](db, "items", ncode.N2B(uint64(2)))
	if err != nil || v.Name != "b" {
		t.Fatalf("Fetch = %+v, %v", v, err)
	}
}

func TestStoreFetchMissing(t *testing.T) {
	db := openTest(t)
	err := db.Update(func(tx *bbolt.Tx) error { return StoreTx(tx, "items", "k", item{Name: "x"}) })
	if err != nil {
		t.Fatalf("StoreTx: %v", err)
	}
	if v, err := Fetch[item](db, "items", "k"); err != nil || v.Name != "x" {
		t.Fatalf("Fetch = %+v, %v", v, err)
	}
	if _, err := Fetch[item](db, "items", "nope"); !errors.Is(err, ncode.ErrZeroLength) {
		t.Fatalf("Fetch missing = %v", err)
	}
	if _, err := Fetch[item](db, "other", "k"); !errors.Is(err, bbolt.ErrBucketNotFound) {
		t.Fatalf("Fetch missing bucket = %v", err)
	}
}

func TestResetRestartsSequence(t *testing.T) {
	db := openTest(t)
	appendOne := func() uint64 {
		var seq uint64
		err := db.Update(func(tx *bbolt.Tx) error {
			var err error
			seq, err = AppendTx(tx, "items", func(s uint64) item { return item{Seq: s} })
			return err
		})
		if err != nil {
			t.Fatalf("AppendTx: %v", err)
		}
		return seq
	}
	appendOne()
	appendOne()
	if err := db.Update(func(tx *bbolt.Tx) error { return ResetTx(tx, "items") }); err != nil {
		t.Fatalf("ResetTx: %v", err)
	}
	if seq := appendOne(); seq != 1 {
		t.Fatalf("seq after reset = %d, want 1", seq)
	}
}
