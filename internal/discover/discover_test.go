package discover

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCandidate(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.lammpstrj", true},
		{"run12.lammpstrj", true},
		{"a.lammpstrj.gz", true},
		{"run3.lammpstrj.zst", true},
		{"wa.lammpstrj", true},      //w, but not in the wall position
		{"aw.lammpstrj", false},     //wall trajectory
		{"w.lammpstrj", false},      //wall, shortest possible name
		{"bw.lammpstrj.zst", false}, //wall, compressed
		{".lammpstrj", false},       //no stem at all
		{"lammpstrj", false},
		{"a.lammpstrjx", false},
		{"notes.txt", false},
		{"a.lammpstrj.bz2", false}, //compression we don't read
	}
	for _, tt := range tests {
		if got := Candidate(tt.name); got != tt.want {
			t.Errorf("Candidate(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.lammpstrj"))
	touch(t, filepath.Join(dir, "c.lammpstrj.gz"))
	touch(t, filepath.Join(dir, "bw.lammpstrj")) //wall, must not appear
	touch(t, filepath.Join(dir, "notes.txt"))
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "sub", "d.lammpstrj"))

	flat, err := List(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.lammpstrj"),
		filepath.Join(dir, "c.lammpstrj.gz"),
	}
	if len(flat) != len(want) {
		t.Fatalf("List flat = %v, want %v", flat, want)
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("List flat[%d] = %v, want %v", i, flat[i], want[i])
		}
	}

	deep, err := List(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	want = append(want, filepath.Join(dir, "sub", "d.lammpstrj"))
	if len(deep) != len(want) {
		t.Fatalf("List deep = %v, want %v", deep, want)
	}
	for i := range want {
		if deep[i] != want[i] {
			t.Errorf("List deep[%d] = %v, want %v", i, deep[i], want[i])
		}
	}

	if _, err := List(filepath.Join(dir, "never"), false); err == nil {
		t.Error("listing a missing directory came back clean")
	}
}
