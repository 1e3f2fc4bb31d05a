package render_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"NodeFarm/internal/catalog"
	"NodeFarm/internal/render"
)

var kiwi = catalog.Product{
	ID:          3,
	Name:        "Kiwis",
	Image:       "kiwi fruit.png",
	Price:       2.25,
	Category:    "New Zealand",
	Description: "Tangy & green <b>fresh</b>.",
	Rating:      4.5,
	Reviews:     120,
}

func TestRender_AllTokens(t *testing.T) {
	tmpl := "{%ID%}|{%PRODUCTNAME%}|{%IMAGE%}|{%PRICE%}|{%ORIGIN%}|{%DESCRIPTION%}|{%RATING%}|{%REVIEWS%}"

	got := render.Render(tmpl, kiwi)
	want := "3|Kiwis|/images/kiwi fruit.png|2.25|New Zealand|Tangy & green <b>fresh</b>.|4.5|120"
	if got != want {
		t.Fatalf("got=%q\nwant=%q", got, want)
	}
}

func TestRender_RepeatedAndUnknownTokens(t *testing.T) {
	tmpl := "<h1>{%PRODUCTNAME%}</h1><title>{%PRODUCTNAME%}</title>{%UNKNOWN%}{%PRODUCT_CARDS%}"

	got := render.Render(tmpl, kiwi)
	want := "<h1>Kiwis</h1><title>Kiwis</title>{%UNKNOWN%}{%PRODUCT_CARDS%}"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestRender_DescriptionPassThrough(t *testing.T) {
	got := render.Render("<p>{%DESCRIPTION%}</p>", kiwi)
	if !strings.Contains(got, kiwi.Description) {
		t.Fatalf("description altered: %q", got)
	}
}

func TestRender_ValuesAreNotRescanned(t *testing.T) {
	p := kiwi
	p.Description = "costs {%PRICE%}"

	got := render.Render("{%DESCRIPTION%}", p)
	if got != "costs {%PRICE%}" {
		t.Fatalf("got=%q", got)
	}
}

func TestRender_WholeNumbers(t *testing.T) {
	p := kiwi
	p.Price = 5
	p.Rating = 4

	got := render.Render("{%PRICE%} {%RATING%}", p)
	if got != "5 4" {
		t.Fatalf("got=%q", got)
	}
}

func TestRenderList(t *testing.T) {
	got := render.RenderList("<main>{%PRODUCT_CARDS%}</main>{%PRODUCT_CARDS%}", []string{"a", "b", "c"})
	if got != "<main>abc</main>abc" {
		t.Fatalf("got=%q", got)
	}

	if got := render.RenderList("<main>{%PRODUCT_CARDS%}</main>", nil); got != "<main></main>" {
		t.Fatalf("empty list got=%q", got)
	}
}

func TestTemplates_Overview(t *testing.T) {
	tpl := render.New(`<div class="cards">{%PRODUCT_CARDS%}</div>`, `<figure class="card">{%PRODUCTNAME%}</figure>`, "gone")

	products := catalog.New([]catalog.Product{{Name: "Apples"}, {Name: "Pears"}}).All()
	got := tpl.Overview(products)

	want := `<div class="cards"><figure class="card">Apples</figure><figure class="card">Pears</figure></div>`
	if got != want {
		t.Fatalf("got=%q", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("template-overview.html", "O{%PRODUCT_CARDS%}")
	write("template-product.html", "P{%PRODUCTNAME%}")
	write("404.html", "NF")

	tpl, err := render.Load(dir, filepath.Join(dir, "404.html"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tpl.NotFound() != "NF" {
		t.Fatalf("not found=%q", tpl.NotFound())
	}
	if got := tpl.Product(kiwi); got != "PKiwis" {
		t.Fatalf("product=%q", got)
	}

	_, err = render.Load(dir, filepath.Join(dir, "missing.html"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing not-found page err=%v", err)
	}
}
