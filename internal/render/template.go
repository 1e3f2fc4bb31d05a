package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"NodeFarm/internal/catalog"
)

const (
	TokenName        = "{%PRODUCTNAME%}"
	TokenImage       = "{%IMAGE%}"
	TokenPrice       = "{%PRICE%}"
	TokenOrigin      = "{%ORIGIN%}"
	TokenDescription = "{%DESCRIPTION%}"
	TokenID          = "{%ID%}"
	TokenRating      = "{%RATING%}"
	TokenReviews     = "{%REVIEWS%}"

	TokenProductCards = "{%PRODUCT_CARDS%}"

	imagePrefix = "/images/"

	overviewFile = "template-overview.html"
	productFile  = "template-product.html"
)

// Render substitutes every product token in tmpl in a single pass.
// Substituted values are not scanned again, unknown tokens are kept.
func Render(tmpl string, p catalog.Product) string {
	r := strings.NewReplacer(
		TokenName, p.Name,
		TokenImage, imagePrefix+p.Image,
		TokenPrice, formatFloat(p.Price),
		TokenOrigin, p.Category,
		TokenDescription, p.Description,
		TokenID, strconv.Itoa(p.ID),
		TokenRating, formatFloat(p.Rating),
		TokenReviews, strconv.Itoa(p.Reviews),
	)
	return r.Replace(tmpl)
}

func RenderList(tmpl string, fragments []string) string {
	return strings.ReplaceAll(tmpl, TokenProductCards, strings.Join(fragments, ""))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Templates holds the page templates loaded at startup.
type Templates struct {
	overview string
	product  string
	notFound string
}

func New(overview, product, notFound string) *Templates {
	return &Templates{overview: overview, product: product, notFound: notFound}
}

// Load reads the overview and product templates from dir and the
// not-found page from notFoundPath.
func Load(dir, notFoundPath string) (*Templates, error) {
	overview, err := readTemplate(filepath.Join(dir, overviewFile))
	if err != nil {
		return nil, err
	}
	product, err := readTemplate(filepath.Join(dir, productFile))
	if err != nil {
		return nil, err
	}
	notFound, err := readTemplate(notFoundPath)
	if err != nil {
		return nil, err
	}
	return New(overview, product, notFound), nil
}

func readTemplate(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load template: %w", err)
	}
	return string(b), nil
}

func (t *Templates) Overview(products []catalog.Product) string {
	cards := make([]string, 0, len(products))
	for _, p := range products {
		cards = append(cards, Render(t.product, p))
	}
	return RenderList(t.overview, cards)
}

func (t *Templates) Product(p catalog.Product) string {
	return Render(t.product, p)
}

func (t *Templates) NotFound() string {
	return t.notFound
}
