package store

import (
	"testing"

	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

func employee(id uint, name, status string, deptID uint, salary float64) model.Employee {
	var ref *uint
	if deptID != 0 {
		ref = &deptID
	}
	return model.Employee{
		Model:        gorm.Model{ID: id},
		Fullname:     name,
		Status:       status,
		DepartmentID: ref,
		Salary:       salary,
	}
}

func TestApply_EmptyFilterReturnsAllInOrder(t *testing.T) {
	items := []model.Employee{
		employee(1, "A", "Active", 10, 100),
		employee(2, "B", "Inactive", 10, 200),
		employee(3, "C", "Active", 20, 300),
	}

	got := Apply(items, Filter{})
	if len(got) != 3 {
		t.Fatalf("empty filter must return the full cache, got %d items", len(got))
	}
	for i, item := range got {
		if item.ID != items[i].ID {
			t.Errorf("order must be preserved, position %d has id %d", i, item.ID)
		}
	}
}

func TestApply_EmptyConstraintMeansNoRestriction(t *testing.T) {
	items := []model.Employee{
		employee(1, "A", "Active", 10, 100),
		employee(2, "B", "Inactive", 10, 200),
	}

	got := Apply(items, Filter{"status": ""})
	if len(got) != 2 {
		t.Errorf("empty constraint value must not restrict, got %d items", len(got))
	}
}

func TestApply_ExactStatusMatch(t *testing.T) {
	items := []model.Employee{employee(1, "A", "Active", 0, 0)}

	if got := Apply(items, Filter{"status": "Inactive"}); len(got) != 0 {
		t.Errorf("Active employee must not match Inactive filter, got %+v", got)
	}
	if got := Apply(items, Filter{"status": "Active"}); len(got) != 1 {
		t.Errorf("exact match expected, got %+v", got)
	}
	// No case-insensitive matching
	if got := Apply(items, Filter{"status": "active"}); len(got) != 0 {
		t.Errorf("matching must be case-sensitive, got %+v", got)
	}
}

func TestApply_ReferenceFieldMatchesByID(t *testing.T) {
	items := []model.Employee{
		employee(1, "A", "Active", 10, 0),
		employee(2, "B", "Active", 20, 0),
	}

	got := Apply(items, Filter{"departmentId": "20"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected only employee 2, got %+v", got)
	}
}

func TestApply_NestedReferenceMatchesByID(t *testing.T) {
	dept := &model.Department{Model: gorm.Model{ID: 7}, Name: "Engineering"}
	withDept := employee(1, "A", "Active", 7, 0)
	withDept.Department = dept
	items := []model.Employee{withDept, employee(2, "B", "Active", 0, 0)}

	got := Apply(items, Filter{"department": "7"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("nested reference should match on its identifier, got %+v", got)
	}
}

func TestApply_MultipleConstraintsAreConjunctive(t *testing.T) {
	items := []model.Employee{
		employee(1, "A", "Active", 10, 0),
		employee(2, "B", "Active", 20, 0),
		employee(3, "C", "Inactive", 10, 0),
	}

	got := Apply(items, Filter{"status": "Active", "departmentId": "10"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("all constraints must hold, got %+v", got)
	}
}

func TestCountBy(t *testing.T) {
	items := []model.Employee{
		employee(1, "A", "Active", 0, 0),
		employee(2, "B", "Active", 0, 0),
		employee(3, "C", "Inactive", 0, 0),
	}

	counts := CountBy(items, func(e model.Employee) string { return e.Status })
	if counts["Active"] != 2 || counts["Inactive"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestSumBy(t *testing.T) {
	items := []model.Employee{
		employee(1, "A", "Active", 0, 1000),
		employee(2, "B", "Active", 0, 2500.50),
	}

	if total := SumBy(items, func(e model.Employee) float64 { return e.Salary }); total != 3500.50 {
		t.Errorf("expected 3500.50, got %v", total)
	}
}
