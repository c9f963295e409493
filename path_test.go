package analemma

import "testing"

// --- BuildYearPath ---

func TestBuildYearPathShape(t *testing.T) {
	path := BuildYearPath(NewSolarModel(CoefficientsClassic))

	if len(path) != DaysPerYear {
		t.Fatalf("len(path) = %d, want %d", len(path), DaysPerYear)
	}
	for i, s := range path {
		if s.Day != i {
			t.Errorf("path[%d].Day = %d, want %d", i, s.Day, i)
		}
	}
}

func TestBuildYearPathDeterministic(t *testing.T) {
	model := NewSolarModel(CoefficientsRevised)
	a := BuildYearPath(model)
	b := BuildYearPath(model)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("path sample %d differs between builds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestBuildYearPathMatchesModel(t *testing.T) {
	model := NewSolarModel(CoefficientsClassic)
	path := BuildYearPath(model)
	for _, day := range []int{0, 80, 172, 266, 355, 364} {
		h, v := model.PositionForDay(float64(day))
		if path[day].Horizontal != h || path[day].Vertical != v {
			t.Errorf("path[%d] = %+v, want (%v, %v)", day, path[day], h, v)
		}
	}
}

// --- At (wrapping index) ---

func TestYearPathAtWraps(t *testing.T) {
	path := BuildYearPath(NewSolarModel(CoefficientsClassic))
	tests := []struct {
		index   int
		wantDay int
	}{
		{0, 0},
		{364, 364},
		{365, 0}, // the implicit closure: day 364 joins back to day 0
		{366, 1},
		{730, 0},
		{-1, 364},
		{-365, 0},
	}
	for _, tt := range tests {
		if got := path.At(tt.index).Day; got != tt.wantDay {
			t.Errorf("At(%d).Day = %d, want %d", tt.index, got, tt.wantDay)
		}
	}
}

// --- Seasons ---

func TestSeasonForDayBoundaries(t *testing.T) {
	tests := []struct {
		day  int
		want Season
	}{
		{0, WinterToSpring},
		{79, WinterToSpring},
		{80, SpringToSummer},
		{171, SpringToSummer},
		{172, SummerToAutumn},
		{265, SummerToAutumn},
		{266, AutumnToWinter},
		{364, AutumnToWinter},
		{365, WinterToSpring}, // wraps
		{-1, AutumnToWinter},  // wraps backward
	}
	for _, tt := range tests {
		if got := SeasonForDay(tt.day); got != tt.want {
			t.Errorf("SeasonForDay(%d) = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestSeasonStrings(t *testing.T) {
	tests := []struct {
		season Season
		want   string
	}{
		{WinterToSpring, "Winter → Spring"},
		{SpringToSummer, "Spring → Summer"},
		{SummerToAutumn, "Summer → Autumn"},
		{AutumnToWinter, "Autumn → Winter"},
		{Season(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.season.String(); got != tt.want {
			t.Errorf("Season(%d).String() = %q, want %q", tt.season, got, tt.want)
		}
	}
}

func TestSeasonColorsDistinct(t *testing.T) {
	seen := map[Color]Season{}
	for s := WinterToSpring; s <= AutumnToWinter; s++ {
		c := s.Color()
		if c.A == 0 {
			t.Errorf("%v has a fully transparent color", s)
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("%v and %v share a color", prev, s)
		}
		seen[c] = s
	}
}

// --- Named days ---

func TestNamedDayPositions(t *testing.T) {
	path := BuildYearPath(NewSolarModel(CoefficientsClassic))
	proj := NewProjector(Viewport{Width: 540, Height: 960})

	got := NamedDayPositions(path, proj)
	if len(got) != len(NamedDays) {
		t.Fatalf("len = %d, want %d", len(got), len(NamedDays))
	}
	for i, nd := range NamedDays {
		if got[i].Label != nd.Label {
			t.Errorf("position %d label = %q, want %q", i, got[i].Label, nd.Label)
		}
		want := proj.Project(path[nd.Day])
		if got[i].Point != want {
			t.Errorf("position %d point = %+v, want %+v", i, got[i].Point, want)
		}
	}
}

func TestNamedDaysInRange(t *testing.T) {
	for _, nd := range NamedDays {
		if nd.Day < 0 || nd.Day >= DaysPerYear {
			t.Errorf("named day %q = %d, outside [0, %d)", nd.Label, nd.Day, DaysPerYear)
		}
	}
}
