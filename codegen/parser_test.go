package codegen

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const parserSrc = `package demo

import (
	"time"

	optional "github.com/cvpartner/optional-field"
	opt "github.com/cvpartner/optional-field"
)

//optional:fields
type User struct {
	Name  optional.Field[string] ` + "`json:\"name\"`" + `
	Age   opt.Field[int]
	Born  time.Time
	Tags  []string
	inner optional.Field[bool]
}

type Plain struct {
	A int
}

type NotAStruct int
`

func TestExtractStructs(t *testing.T) {
	file, _, err := ParseSource("demo.go", []byte(parserSrc))
	if err != nil {
		t.Fatal(err)
	}
	structs, err := ExtractStructs(file, "demo.go", nil)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, si := range structs {
		names = append(names, si.Name)
	}
	if diff := cmp.Diff([]string{"User", "Plain", "NotAStruct"}, names); diff != "" {
		t.Errorf("struct names mismatch (-want +got):\n%s", diff)
	}

	user := structs[0]
	if !user.Marked {
		t.Error("User not marked")
	}
	tristate := map[string]bool{}
	for _, f := range user.Fields {
		for _, n := range f.Names {
			tristate[n] = f.Tristate
		}
	}
	want := map[string]bool{
		"Name":  true,
		"Age":   true, // renamed import
		"Born":  false,
		"Tags":  false,
		"inner": true,
	}
	if diff := cmp.Diff(want, tristate); diff != "" {
		t.Errorf("tristate detection mismatch (-want +got):\n%s", diff)
	}

	if structs[1].Marked {
		t.Error("Plain marked")
	}
	if structs[2].Struct != nil {
		t.Error("NotAStruct recorded as struct")
	}
}

func TestExtractStructsDotImport(t *testing.T) {
	src := `package demo

import . "github.com/cvpartner/optional-field"

//optional:fields
type T struct {
	A Field[int]
	B int
}
`
	file, _, err := ParseSource("demo.go", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	structs, err := ExtractStructs(file, "demo.go", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(structs) != 1 || !structs[0].Fields[0].Tristate || structs[0].Fields[1].Tristate {
		t.Errorf("dot import detection failed: %+v", structs)
	}
}

func TestExtractStructsMarkerErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			"marker on non-struct",
			"package demo\n\n//optional:fields\ntype T int\n",
		},
		{
			"marker on empty struct",
			"package demo\n\n//optional:fields\ntype T struct{}\n",
		},
		{
			"marker on embedded-only struct",
			"package demo\n\ntype E struct{ A int }\n\n//optional:fields\ntype T struct{ E }\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, _, err := ParseSource("demo.go", []byte(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			_, err = ExtractStructs(file, "demo.go", nil)
			if !errors.Is(err, ErrNotStruct) {
				t.Errorf("err = %v, want ErrNotStruct", err)
			}
		})
	}
}

func TestSelectTargets(t *testing.T) {
	file, _, err := ParseSource("demo.go", []byte(parserSrc))
	if err != nil {
		t.Fatal(err)
	}
	structs, err := ExtractStructs(file, "demo.go", nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("marked by default", func(t *testing.T) {
		targets, err := SelectTargets(structs, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(targets) != 1 || targets[0].Name != "User" {
			t.Errorf("targets = %+v", targets)
		}
	})

	t.Run("by name", func(t *testing.T) {
		notFound := map[string]bool{"Plain": true}
		targets, err := SelectTargets(structs, []string{"Plain"}, notFound)
		if err != nil {
			t.Fatal(err)
		}
		if len(targets) != 1 || targets[0].Name != "Plain" {
			t.Errorf("targets = %+v", targets)
		}
		if len(notFound) != 0 {
			t.Errorf("notFound = %v", notFound)
		}
	})

	t.Run("non-struct by name", func(t *testing.T) {
		_, err := SelectTargets(structs, []string{"NotAStruct"}, nil)
		if !errors.Is(err, ErrNotStruct) {
			t.Errorf("err = %v, want ErrNotStruct", err)
		}
	})

	t.Run("unknown name tracked", func(t *testing.T) {
		notFound := map[string]bool{"Nope": true}
		targets, err := SelectTargets(structs, []string{"Nope"}, notFound)
		if err != nil {
			t.Fatal(err)
		}
		if len(targets) != 0 {
			t.Errorf("targets = %+v", targets)
		}
		if !notFound["Nope"] {
			t.Error("Nope dropped from notFound")
		}
	})
}
