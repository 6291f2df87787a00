package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseLocalDateTime(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"2024-03-01T09:30", "2024-03-01 09:30:00", true},
		{"2024-03-01T09:30:45", "2024-03-01 09:30:00", true},
		{"2024-03-01", "2024-03-01 00:00:00", true},
		{"2024-03-01 09:30", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseLocalDateTime(c.input, time.UTC)
		if ok != c.ok {
			t.Errorf("ParseLocalDateTime(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && got.Format("2006-01-02 15:04:05") != c.want {
			t.Errorf("ParseLocalDateTime(%q) = %s, want %s", c.input, got.Format("2006-01-02 15:04:05"), c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestParseIDs(t *testing.T) {
	ids, ok := ParseIDs([]string{"3", " 7 ", ""})
	if !ok || len(ids) != 2 || ids[0] != 3 || ids[1] != 7 {
		t.Errorf("ParseIDs = %v, %v, want [3 7], true", ids, ok)
	}
	if _, ok := ParseIDs([]string{"3", "x"}); ok {
		t.Errorf("ParseIDs with non-numeric value ok = true, want false")
	}
}

func TestParseLimit(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"", 10, true},
		{"5", 5, true},
		{"100", 100, true},
		{"0", 0, false},
		{"101", 0, false},
		{"-1", 0, false},
		{"ten", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseLimit(c.input, 10, 100)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseLimit(%q) = %d, %v, want %d, %v", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "invalid"},
		{Field: "limit", Message: "required"},
	}
	got := errs.Error()
	want := "start_date: invalid; limit: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "invalid"},
		{Field: "limit", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"start_date": "invalid", "limit": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
