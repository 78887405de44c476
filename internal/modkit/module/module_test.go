package module

import (
	"testing"

	phttp "wifiman/internal/platform/net/http"
	kit "wifiman/internal/platform/testkit"
)

type greeter interface{ Greet() string }
type counter interface{ Count() int }

type hello struct{}

func (hello) Greet() string { return "hi" }

type bundle struct {
	Greeter greeter
	hidden  counter
}

type fakeModule struct {
	name  string
	ports any
}

func (f fakeModule) MountRoutes(phttp.Router) {}
func (f fakeModule) Ports() any               { return f.ports }
func (f fakeModule) Name() string             { return f.name }

func TestPortsOf(t *testing.T) {
	m := fakeModule{name: "credstore", ports: bundle{Greeter: hello{}}}
	g, ok := PortsOf[greeter](m)
	if !ok || g.Greet() != "hi" {
		t.Fatalf("PortsOf greeter failed")
	}
	if _, ok := PortsOf[counter](m); ok {
		t.Fatalf("unexported field must not be visible")
	}
	if _, ok := PortsOf[greeter](fakeModule{name: "x", ports: &bundle{Greeter: hello{}}}); !ok {
		t.Fatalf("pointer bundles should be walked")
	}
	if _, ok := PortsOf[greeter](fakeModule{name: "nil"}); ok {
		t.Fatalf("nil ports should not match")
	}
	if _, ok := PortsOf[greeter](fakeModule{name: "direct", ports: hello{}}); !ok {
		t.Fatalf("direct implementation should match")
	}
	kit.MustPanic(t, func() { _ = MustPortsOf[counter](m) })
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(fakeModule{name: "station", ports: bundle{Greeter: hello{}}})
	Register(fakeModule{name: "credstore"})

	if got := Names(); len(got) != 2 || got[0] != "credstore" || got[1] != "station" {
		t.Fatalf("Names() = %v", got)
	}
	if g, ok := PortsAs[greeter]("station"); !ok || g.Greet() != "hi" {
		t.Fatalf("PortsAs station failed")
	}
	if _, ok := PortsAs[greeter]("missing"); ok {
		t.Fatalf("missing module should not resolve")
	}
}

func TestRegisterBlankName(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	kit.MustPanic(t, func() { Register(fakeModule{name: " "}) })
	if len(Names()) != 0 {
		t.Fatalf("blank module must not be stored")
	}
}
