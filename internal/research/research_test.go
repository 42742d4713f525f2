package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/salesfit/internal/model"
)

func TestTickerFor(t *testing.T) {
	tests := []struct {
		company string
		want    string
	}{
		{"Microsoft", "MSFT"},
		{"microsoft corporation", ""}, // extra words change the key
		{"Sales-Force", "CRM"},        // punctuation is stripped
		{"Plumbus", ""},
	}

	for _, tt := range tests {
		t.Run(tt.company, func(t *testing.T) {
			assert.Equal(t, tt.want, TickerFor(tt.company))
		})
	}
}

func TestReferenceLinksKnownTicker(t *testing.T) {
	links := ReferenceLinks("Oracle")

	require.Len(t, links, 5)
	assert.Equal(t, "https://finance.yahoo.com/quote/ORCL", links[0].URL)
	assert.Equal(t, "https://www.marketwatch.com/investing/stock/orcl", links[1].URL)
	assert.Equal(t, "https://www.bloomberg.com/quote/ORCL:US", links[2].URL)
	assert.Equal(t, "https://www.reuters.com/markets/companies/ORCL.O/", links[3].URL)
	assert.Equal(t, "https://www.crunchbase.com/organization/oracle", links[4].URL)
}

func TestReferenceLinksUnknownCompany(t *testing.T) {
	links := ReferenceLinks("Vandelay Industries, Inc.")

	require.Len(t, links, 1)
	assert.Equal(t, "https://www.crunchbase.com/organization/vandelay-industries-inc", links[0].URL)
	assert.Equal(t, "profile", links[0].Type)
}

func TestNameSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Software", "acme-software"},
		{"  Kruger   Industrial  Smoothing ", "kruger-industrial-smoothing"},
		{"O'Brien & Sons", "o-brien-sons"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, nameSlug(tt.in))
		})
	}
}

func TestAssemble(t *testing.T) {
	seller := model.Company{Name: "Acme Software", Industry: "Technology", MarketCap: "$2B"}
	target := model.Company{Name: "Plumbus"}

	data := Assemble(seller, target)

	assert.Equal(t, "Acme Software", data.Seller.Company)
	require.NotNil(t, data.Seller.Financials)
	assert.Equal(t, "technology", data.Seller.Financials.Industry)
	assert.Equal(t, "$2B", data.Seller.Financials.MarketCap)
	assert.NotEmpty(t, data.Seller.Sources)

	assert.Nil(t, data.Target.Financials, "no financial fields supplied")
	assert.NotEmpty(t, data.Target.Sources)
}

func TestDimensionReferences(t *testing.T) {
	for _, name := range model.DimensionOrder {
		refs := DimensionReferences(name)
		assert.NotEmpty(t, refs, name)
		for _, ref := range refs {
			assert.NotEmpty(t, ref.URL)
			assert.Equal(t, "reference", ref.Type)
		}
	}

	assert.Nil(t, DimensionReferences("nonexistent"))
}
