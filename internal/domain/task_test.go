package domain

import "testing"

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"todo", "doing", "done"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) = %v, want nil", valid, err)
		}
	}
	for _, invalid := range []string{"", "Done", "archived", "TODO"} {
		if _, err := ParseStatus(invalid); err == nil {
			t.Errorf("ParseStatus(%q) succeeded, want error", invalid)
		}
	}
}

func TestParsePriority(t *testing.T) {
	for _, valid := range []string{"low", "medium", "high"} {
		if _, err := ParsePriority(valid); err != nil {
			t.Errorf("ParsePriority(%q) = %v, want nil", valid, err)
		}
	}
	for _, invalid := range []string{"", "urgent", "High"} {
		if _, err := ParsePriority(invalid); err == nil {
			t.Errorf("ParsePriority(%q) succeeded, want error", invalid)
		}
	}
}

func TestTaskPatchIsEmpty(t *testing.T) {
	if empty := (TaskPatch{}).IsEmpty(); !empty {
		t.Error("zero patch should be empty")
	}
	title := "x"
	if empty := (TaskPatch{Title: &title}).IsEmpty(); empty {
		t.Error("patch with title should not be empty")
	}
	// An explicit null due_date still counts as a supplied field.
	if empty := (TaskPatch{DueDate: OptionalDate{Set: true}}).IsEmpty(); empty {
		t.Error("patch clearing due_date should not be empty")
	}
}

func TestTaskFilterPaginated(t *testing.T) {
	if (TaskFilter{}).Paginated() {
		t.Error("zero filter should not be paginated")
	}
	if !(TaskFilter{Limit: 10}).Paginated() {
		t.Error("filter with limit should be paginated")
	}
}
