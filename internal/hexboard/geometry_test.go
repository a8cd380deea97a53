// File internal/hexboard/geometry_test.go
package hexboard

import "testing"

func TestMaxRowSymmetric(t *testing.T) {
	for c := 0; c < NumCols; c++ {
		mirror := NumCols - 1 - c
		if MaxRow(Glinski, c) != MaxRow(Glinski, mirror) {
			t.Errorf("glinski column heights not mirror-symmetric: col %d=%d, col %d=%d",
				c, MaxRow(Glinski, c), mirror, MaxRow(Glinski, mirror))
		}
	}
}

func TestMaxRowCenterIsTallest(t *testing.T) {
	center := MaxRow(Glinski, 5)
	for c := 0; c < NumCols; c++ {
		if MaxRow(Glinski, c) > center {
			t.Errorf("column %d (height %d) taller than center column (height %d)", c, MaxRow(Glinski, c), center)
		}
	}
}

func TestOnBoardBounds(t *testing.T) {
	cases := []struct {
		col, row int
		want     bool
	}{
		{0, 0, true},
		{0, MaxRow(Glinski, 0) - 1, true},
		{0, MaxRow(Glinski, 0), false},
		{-1, 0, false},
		{NumCols, 0, false},
		{5, -1, false},
	}
	for _, c := range cases {
		if got := OnBoard(Glinski, c.col, c.row); got != c.want {
			t.Errorf("OnBoard(%d,%d) = %v, want %v", c.col, c.row, got, c.want)
		}
	}
}

func TestLogicalStorageRoundTrip(t *testing.T) {
	for col := 0; col < NumCols; col++ {
		for logical := -5; logical < 16; logical++ {
			storage := LogicalToStorage(col, logical)
			back := StorageToLogical(col, storage)
			if back != logical {
				t.Errorf("round trip failed col=%d logical=%d: got storage=%d back=%d", col, logical, storage, back)
			}
		}
	}
}

func TestMcCooeyRowsFixed(t *testing.T) {
	want := [NumCols]int{6, 7, 8, 9, 10, 11, 10, 9, 8, 7, 6}
	for c := 0; c < NumCols; c++ {
		if MaxRow(McCooey, c) != want[c] {
			t.Errorf("mccooey column %d height = %d, want %d", c, MaxRow(McCooey, c), want[c])
		}
	}
}

func TestSquareName(t *testing.T) {
	cases := []struct {
		col, row int
		want     string
	}{
		{0, 0, "A1"},
		{10, 10, "K11"},
		{26, 0, "??"},
	}
	for _, c := range cases {
		if got := SquareName(c.col, c.row); got != c.want {
			t.Errorf("SquareName(%d,%d) = %q, want %q", c.col, c.row, got, c.want)
		}
	}
}
