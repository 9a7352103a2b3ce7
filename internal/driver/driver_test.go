package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"athena/internal/token"
	"athena/internal/types"
)

func TestTokenize_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main"+SourceExt)
	if err := os.WriteFile(path, []byte("f = 1\ng = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Tokenize(path, 16)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}

	var stmts, blocks int
	for _, tok := range res.Tokens {
		switch tok.Kind {
		case token.EndOfStmt:
			stmts++
		case token.EndOfBlock:
			blocks++
		}
	}
	if stmts != 1 || blocks != 1 {
		t.Fatalf("layout tokens = %d statements, %d blocks; want 1 and 1", stmts, blocks)
	}
}

func TestCheckVirtual_EndToEnd(t *testing.T) {
	res := CheckVirtual("main.ath", []byte("f = 1\ng = f\n"), 16)
	if res.Bag.HasErrors() {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	if len(res.Resolved.Functions) != 2 {
		t.Fatalf("functions = %d, want 2", len(res.Resolved.Functions))
	}
	for _, fn := range res.Resolved.Functions {
		if fn.Ret != res.Table.GetPrim(types.PrimInt) {
			t.Fatalf("%s resolves to %v, want Int", res.Interner.MustLookup(fn.Name), fn.Ret.Kind)
		}
	}
}

func TestCheckDir_Parallel(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a" + SourceExt: "f = 1\n",
		"b" + SourceExt: "g = 2\n",
		"skip.txt":      "not athena",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	results, err := CheckDir(context.Background(), dir, 16, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	// Path order is deterministic.
	if filepath.Base(results[0].Path) != "a"+SourceExt {
		t.Fatalf("first result = %s", results[0].Path)
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	root := t.TempDir()
	cache, err := NewDiskCache(root)
	if err != nil {
		t.Fatal(err)
	}

	res := CheckVirtual("main.ath", []byte("f = 1\n"), 16)
	payload := Summarize(res)
	if err := cache.Store(res.File.Hash, payload); err != nil {
		t.Fatal(err)
	}

	got, ok := cache.Load(res.File.Hash)
	if !ok {
		t.Fatalf("cache miss after store")
	}
	if got.Path != "main.ath" || got.Errors != 0 {
		t.Fatalf("payload = %+v", got)
	}
	if len(got.Functions) != 1 || got.Functions[0] != "f" {
		t.Fatalf("functions = %v", got.Functions)
	}

	var other [32]byte
	other[0] = 0xFF
	if _, ok := cache.Load(other); ok {
		t.Fatalf("unexpected hit for a different content hash")
	}
}
