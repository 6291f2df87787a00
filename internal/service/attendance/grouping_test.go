package attendance

import (
	"math/rand"
	"testing"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/collation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployees() []attendance.Employee {
	return []attendance.Employee{
		{ID: 1, Name: "Сидоров Пётр", Department: "Склад", Position: "Кладовщик"},
		{ID: 2, Name: "Анна Ли", Department: "Бухгалтерия", Position: "Бухгалтер"},
		{ID: 3, Name: "Иванов Иван", Department: "", Position: "Водитель"},
		{ID: 4, Name: "Борисова Анна", Department: "Бухгалтерия", Position: "Главный бухгалтер"},
		{ID: 5, Name: "Ёлкин Олег", Department: "ИТ-отдел", Position: "Разработчик"},
		{ID: 6, Name: "Абрамов Сергей", Department: "Склад", Position: ""},
		{ID: 7, Name: "Зимин Максим", Department: "ИТ-отдел", Position: "Аналитик"},
	}
}

func ruCompare() collation.Compare {
	return collation.MustNew("ru").Comparer()
}

func groupIDs(view attendance.GroupedView) map[string][]int64 {
	out := make(map[string][]int64)
	for _, g := range view {
		for _, e := range g.Employees {
			out[g.Department] = append(out[g.Department], e.ID)
		}
	}
	return out
}

func TestGroupByDepartment_Order(t *testing.T) {
	view := GroupByDepartment(testEmployees(), ruCompare())

	assert.Equal(t, []string{"Без отдела", "Бухгалтерия", "ИТ-отдел", "Склад"}, view.Keys())
	assert.Equal(t, map[string][]int64{
		"Без отдела":  {3},
		"Бухгалтерия": {2, 4},
		"ИТ-отдел":    {5, 7},
		"Склад":       {6, 1},
	}, groupIDs(view))
}

func TestGroupByDepartment_Partition(t *testing.T) {
	employees := testEmployees()
	view := GroupByDepartment(employees, ruCompare())

	seen := make(map[int64]int)
	for _, g := range view {
		for _, e := range g.Employees {
			seen[e.ID]++
		}
	}
	require.Len(t, seen, len(employees))
	for id, n := range seen {
		assert.Equal(t, 1, n, "employee %d must appear exactly once", id)
	}
	assert.Equal(t, len(employees), view.Len())
}

func TestGroupByDepartment_PermutationInvariant(t *testing.T) {
	employees := testEmployees()
	want := GroupByDepartment(employees, ruCompare())

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]attendance.Employee(nil), employees...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := GroupByDepartment(shuffled, ruCompare())
		assert.Equal(t, want.Keys(), got.Keys())
		assert.Equal(t, groupIDs(want), groupIDs(got))
	}
}

func TestGroupByDepartment_StableOnEqualNames(t *testing.T) {
	employees := []attendance.Employee{
		{ID: 10, Name: "Иванов", Department: "Склад"},
		{ID: 11, Name: "Иванов", Department: "Склад"},
		{ID: 12, Name: "Алексеев", Department: "Склад"},
	}
	view := GroupByDepartment(employees, ruCompare())
	assert.Equal(t, []int64{12, 10, 11}, groupIDs(view)["Склад"])
}

func TestGroupByDepartment_DoesNotMutateInput(t *testing.T) {
	employees := testEmployees()
	before := append([]attendance.Employee(nil), employees...)
	GroupByDepartment(employees, ruCompare())
	assert.Equal(t, before, employees)
}

func TestGroupByDepartment_Empty(t *testing.T) {
	view := GroupByDepartment(nil, ruCompare())
	assert.Empty(t, view)
	assert.Equal(t, 0, view.Len())
}

func TestFilterGroups_BlankQueryReturnsInput(t *testing.T) {
	view := GroupByDepartment(testEmployees(), ruCompare())
	assert.Equal(t, view, FilterGroups(view, ""))
	assert.Equal(t, view, FilterGroups(view, "   "))
}

func TestFilterGroups_MatchesNamePositionAndDepartment(t *testing.T) {
	view := GroupByDepartment(testEmployees(), ruCompare())

	cases := []struct {
		query string
		want  map[string][]int64
	}{
		{"анна", map[string][]int64{"Бухгалтерия": {2, 4}}},
		{"водитель", map[string][]int64{"Без отдела": {3}}},
		{"склад", map[string][]int64{"Склад": {6, 1}}},
		{"без отдела", map[string][]int64{"Без отдела": {3}}},
		{"аналитик", map[string][]int64{"ИТ-отдел": {7}}},
		{"ИТ", map[string][]int64{"Без отдела": {3}, "ИТ-отдел": {5, 7}}}, // "водитель" contains "ит"
		{"главный", map[string][]int64{"Бухгалтерия": {4}}},
		{"nobody", map[string][]int64{}},
	}
	for _, c := range cases {
		got := FilterGroups(view, c.query)
		assert.Equal(t, c.want, groupIDs(got), c.query)
	}
}

func TestFilterGroups_CaseInsensitive(t *testing.T) {
	view := GroupByDepartment(testEmployees(), ruCompare())
	assert.Equal(t, FilterGroups(view, "ann"), FilterGroups(view, "ANN"))
	assert.Equal(t, FilterGroups(view, "анна"), FilterGroups(view, "АННА"))
}

func TestFilterGroups_Subset(t *testing.T) {
	view := GroupByDepartment(testEmployees(), ruCompare())
	original := groupIDs(view)

	for _, q := range []string{"а", "о", "ит", "x", "бух"} {
		for dept, ids := range groupIDs(FilterGroups(view, q)) {
			require.Contains(t, original, dept)
			for _, id := range ids {
				assert.Contains(t, original[dept], id, "query %q", q)
			}
		}
	}
}

func TestFilterGroups_PreservesOrderAndIsIdempotent(t *testing.T) {
	view := GroupByDepartment(testEmployees(), ruCompare())
	first := FilterGroups(view, "а")
	second := FilterGroups(view, "а")
	assert.Equal(t, first, second)

	keys := first.Keys()
	for i := 1; i < len(keys); i++ {
		assert.Negative(t, ruCompare()(keys[i-1], keys[i]))
	}
}
