package gokanjihanzi

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(testdataPath(t, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(b)
}

// testTable builds the table from the testdata fixtures.
func testTable(t *testing.T) *Table {
	t.Helper()
	table, _ := Build(readTestdata(t, "kanji_mapping_table.txt"), readTestdata(t, "kanji_list.txt"))
	return table
}
