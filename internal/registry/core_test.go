package registry

import "testing"

func TestForYearBuckets(t *testing.T) {
	cases := []struct {
		year int
		want string
	}{
		{0, "CORE2023"},
		{-1, "CORE2023"},
		{2025, "CORE2023"},
		{2023, "CORE2023"},
		{2022, "CORE2021"},
		{2021, "CORE2021"},
		{2020, "CORE2020"},
		{2019, "CORE2018"},
		{2018, "CORE2018"},
		{2017, "CORE2017"},
		{2016, "ERA2010"},
		{2005, "ERA2010"},
	}
	for _, c := range cases {
		if got := ForYear(c.year); got.Name != c.want {
			t.Errorf("ForYear(%d) = %s, want %s", c.year, got.Name, c.want)
		}
	}
}

func TestForYearMemoized(t *testing.T) {
	a := ForYear(2024)
	b := ForYear(2023)
	if a != b {
		t.Error("same snapshot should return the same *Registry")
	}
}

func TestByAcronym(t *testing.T) {
	reg := ForYear(2024)

	hits := reg.ByAcronym("neurips")
	if len(hits) != 1 {
		t.Fatalf("ByAcronym(neurips) returned %d hits, want 1", len(hits))
	}
	if hits[0].Rank != "A*" {
		t.Errorf("NeurIPS rank = %s, want A*", hits[0].Rank)
	}

	// ICDM 同一缩写对应两个不同的会议
	hits = reg.ByAcronym("ICDM")
	if len(hits) != 2 {
		t.Errorf("ByAcronym(ICDM) returned %d hits, want 2", len(hits))
	}

	if got := reg.ByAcronym(""); got != nil {
		t.Errorf("ByAcronym(\"\") = %v, want nil", got)
	}
	if got := reg.ByAcronym("NOSUCH"); got != nil {
		t.Errorf("ByAcronym(NOSUCH) = %v, want nil", got)
	}
}

func TestOldSnapshotsUseNIPS(t *testing.T) {
	reg := ForYear(2017)
	if hits := reg.ByAcronym("NIPS"); len(hits) != 1 {
		t.Errorf("CORE2017 ByAcronym(NIPS) returned %d hits, want 1", len(hits))
	}
	if hits := reg.ByAcronym("NeurIPS"); len(hits) != 0 {
		t.Errorf("CORE2017 should not contain NeurIPS, got %d hits", len(hits))
	}
}
