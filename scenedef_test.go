package unitrates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	names := c.SceneNames()
	assert.Contains(t, names, "apples")
	assert.Contains(t, names, "purple candy")

	def, ok := c.Scene("Apples")
	require.True(t, ok)
	assert.Equal(t, "apple", def.Singular)
	assert.Equal(t, 15.0, def.FixedAxisMax)
	assert.Equal(t, "${{value}}", def.NumeratorFormat)
	assert.Equal(t, 5, def.ItemsPerBag())

	carrots, ok := c.Scene("carrots")
	require.True(t, ok)
	assert.Equal(t, 30.0, carrots.FixedAxisMax)
	assert.Equal(t, 0, carrots.ItemsPerBag())

	_, ok = c.Scene("kumquats")
	assert.False(t, ok)
}

func TestDefaultCatalogScenesBuild(t *testing.T) {
	c := DefaultCatalog()
	for _, name := range c.SceneNames() {
		def, _ := c.Scene(name)
		s, err := NewShoppingScene(def, ShoppingSceneOptions{})
		require.NoError(t, err, name)
		assert.Equal(t, def.NumberOfBags, s.Shelf.NumberOfBags.Value(), name)
		assert.Len(t, s.QuestionSets, len(def.QuestionQuantities), name)
	}
}

func TestLoadCatalogDefaults(t *testing.T) {
	c, err := LoadCatalog([]byte(`
categories:
  - name: test
    scenes:
      - name: plums
        unitRate: 1.2
        numberOfBags: 2
        quantityPerBag: 3
`))
	require.NoError(t, err)
	def, ok := c.Scene("plums")
	require.True(t, ok)
	assert.Equal(t, "plums", def.Plural)
	assert.Equal(t, "plums", def.Singular)
	assert.Equal(t, "plums", def.DenominatorUnits)
	assert.Equal(t, 6.0, def.FixedAxisMax)
	assert.Equal(t, "Plums", def.DenominatorAxis().UnitsLabel)
}

func TestLoadCatalogJSON(t *testing.T) {
	doc := `{"categories": [{"name": "x", "scenes": [` +
		`{"name": "figs", "unitRate": 2, "numberOfBags": 1, "quantityPerBag": 4, "openBags": true}]}]}`
	c, err := LoadCatalog([]byte(doc))
	require.NoError(t, err)
	def, _ := c.Scene("figs")
	assert.True(t, def.OpenBags)
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"syntax", "categories: [", "parse scenes"},
		{"empty", "categories: []", "no categories"},
		{"no rate", `
categories:
  - scenes:
      - {name: a, numberOfBags: 1, quantityPerBag: 1}`, "unitRate"},
		{"fractional open bags", `
categories:
  - scenes:
      - {name: a, unitRate: 1, numberOfBags: 1, quantityPerBag: 0.5, openBags: true}`, "openBags"},
		{"duplicate", `
categories:
  - scenes:
      - {name: a, unitRate: 1, numberOfBags: 1, quantityPerBag: 1}
      - {name: a, unitRate: 2, numberOfBags: 1, quantityPerBag: 1}`, "duplicate"},
		{"empty question set", `
categories:
  - scenes:
      - {name: a, unitRate: 1, numberOfBags: 1, quantityPerBag: 1, questionQuantities: [[]]}`, "questionQuantities[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
