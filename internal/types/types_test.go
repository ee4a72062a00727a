package types

import (
	"testing"
)

func TestFromName_Scalars(t *testing.T) {
	cases := map[string]Kind{
		"byte":   KindByte,
		"int":    KindInt,
		"long":   KindLong,
		"float":  KindFloat,
		"double": KindDouble,
	}
	for name, want := range cases {
		got := FromName(name)
		if got.Kind != want {
			t.Fatalf("FromName(%q).Kind = %v, want %v", name, got.Kind, want)
		}
		if got.Name != "" || got.Args != nil {
			t.Fatalf("FromName(%q) carries payload: %+v", name, got)
		}
		if !got.IsScalar() {
			t.Fatalf("FromName(%q) not scalar", name)
		}
	}
}

func TestFromName_ClassFallback(t *testing.T) {
	// Всё остальное — Class с точным сохранением имени.
	names := []string{
		"Vector", "string", "Byte", "INT", "int32",
		" int", "int ", "мир",
	}
	for _, name := range names {
		got := FromName(name)
		if got.Kind != KindClass {
			t.Fatalf("FromName(%q).Kind = %v, want KindClass", name, got.Kind)
		}
		if got.Name != name {
			t.Fatalf("FromName(%q).Name = %q, name not preserved", name, got.Name)
		}
	}
}

func TestFromName_NeverGeneric(t *testing.T) {
	if got := FromName("List<int>"); got.Kind != KindClass {
		t.Fatalf("FromName must not synthesize generics, got %v", got.Kind)
	}
}

func TestType_String(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{FromName("byte"), "byte"},
		{FromName("double"), "double"},
		{Class("Vector"), "Vector"},
		{Generic("List", FromName("int")), "List<int>"},
		{Generic("Map", Class("Key"), Generic("List", FromName("long"))), "Map<Key, List<long>>"},
	}
	for _, tt := range cases {
		if got := tt.typ.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestType_Equal(t *testing.T) {
	a := Generic("List", FromName("int"))
	b := Generic("List", FromName("int"))
	if !a.Equal(b) {
		t.Fatal("identical generics must be equal")
	}
	if a.Equal(Generic("List", FromName("long"))) {
		t.Fatal("different args must not be equal")
	}
	if Class("A").Equal(Class("B")) {
		t.Fatal("different names must not be equal")
	}
	if FromName("int").Equal(FromName("long")) {
		t.Fatal("different scalars must not be equal")
	}
}
