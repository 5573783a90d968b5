package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseTestDoc(t *testing.T, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestGetText(t *testing.T) {
	doc := parseTestDoc(t, `<div>1,500 <span>~$45.20</span> left</div>`)

	sel := doc.Find("div")
	require.Len(t, sel.Nodes, 1)
	// the whole subtree, nested elements included
	require.Equal(t, "1,500 ~$45.20 left", GetText(sel.Nodes[0]))

	require.Equal(t, "", GetText(nil))
}

func TestOwnText(t *testing.T) {
	doc := parseTestDoc(t, `<div>1,500 <span>~$45.20</span> left</div>`)

	// direct text nodes only, the nested span is excluded
	require.Equal(t, "1,500  left", OwnText(doc.Find("div")))
	require.Equal(t, "", OwnText(doc.Find("article")))
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "Plush Pepe", CleanText("\n   Plush\n   Pepe \n"))
	require.Equal(t, "Rare", CleanText("Rare"))
	require.Equal(t, "", CleanText("  \n "))
}
