package request

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSkillListFromDelimitedString(t *testing.T) {
	var req UpsertProfileRequest
	body := `{"status":"Developer","skills":"js, go"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := SkillList{"js", "go"}
	if !reflect.DeepEqual(req.Skills, want) {
		t.Fatalf("expected %v, got %v", want, req.Skills)
	}
}

func TestSkillListFromArray(t *testing.T) {
	var req UpsertProfileRequest
	body := `{"status":"Developer","skills":[" js ","go",""]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := SkillList{"js", "go"}
	if !reflect.DeepEqual(req.Skills, want) {
		t.Fatalf("expected %v, got %v", want, req.Skills)
	}
}

func TestSkillListRejectsOtherShapes(t *testing.T) {
	var s SkillList
	if err := json.Unmarshal([]byte(`{"a":1}`), &s); err == nil {
		t.Fatal("expected error for object-shaped skills")
	}
	if err := json.Unmarshal([]byte(`[1,2]`), &s); err == nil {
		t.Fatal("expected error for numeric array skills")
	}
}

func TestSkillListDropsEmptySegments(t *testing.T) {
	var s SkillList
	if err := json.Unmarshal([]byte(`" , js ,, go , "`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := SkillList{"js", "go"}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("expected %v, got %v", want, s)
	}
}
