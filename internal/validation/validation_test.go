package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyOf(t *testing.T, raw string) Input {
	t.Helper()
	body, err := DecodeBody([]byte(raw))
	require.NoError(t, err)
	return Input{Params: map[string]string{}, Body: body}
}

func msgs(errs []FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Msg
	}
	return out
}

func validProduct() map[string]any {
	return map[string]any{
		"name":          "T-shirt",
		"price":         json.Number("799"),
		"availability":  true,
		"gender":        "unisex",
		"description":   "Latest T-shirt",
		"quantity":      json.Number("50"),
		"imageUrl":      "http://example.com/t-shirt.jpg",
		"categoryId":    json.Number("1"),
		"subcategoryId": json.Number("2"),
	}
}

func TestCreateProduct_Valid(t *testing.T) {
	errs := CreateProduct.Validate(Input{Body: validProduct()})
	assert.Empty(t, errs)
}

func TestCreateProduct_EmptyBody_ReportsEveryRequiredRule(t *testing.T) {
	errs := CreateProduct.Validate(bodyOf(t, `{}`))

	assert.Equal(t, []string{
		"El nombre del producto no puede ir vacío",
		"El nombre del producto debe ser una cadena de texto",
		"Valor no válido",
		"El precio del producto no puede ir vacío",
		"Precio no válido",
		"El género no puede ir vacío",
		"El género debe ser femenino, masculino o unisex",
		"La cantidad debe ser un número entero mayor o igual a 0",
		"La cantidad no puede ir vacía",
		"El ID de la categoría debe ser un número entero",
		"El ID de la categoría no puede ir vacío",
		"El ID de la subcategoría debe ser un número entero",
		"El ID de la subcategoría no puede ir vacío",
	}, msgs(errs))
}

func TestCreateProduct_NonNumericPrice(t *testing.T) {
	body := validProduct()
	body["price"] = "hola"

	errs := CreateProduct.Validate(Input{Body: body})

	assert.Equal(t, []string{"Valor no válido", "Precio no válido"}, msgs(errs))
	assert.Equal(t, "price", errs[0].Path)
	assert.Equal(t, LocationBody, errs[0].Location)
	assert.Equal(t, "hola", errs[0].Value)
}

func TestCreateProduct_NonPositivePrice(t *testing.T) {
	for _, price := range []any{json.Number("0"), json.Number("-20"), "-1.5"} {
		body := validProduct()
		body["price"] = price

		errs := CreateProduct.Validate(Input{Body: body})

		assert.Equal(t, []string{"Precio no válido"}, msgs(errs), "price %v", price)
	}
}

func TestCreateProduct_OptionalFieldsAreCheckedWhenPresent(t *testing.T) {
	body := validProduct()
	body["availability"] = "quizás"
	body["imageUrl"] = "no es una url"
	body["imageUrls"] = []any{"http://example.com/a.jpg", "nope"}
	body["description"] = json.Number("3")

	errs := CreateProduct.Validate(Input{Body: body})

	assert.Equal(t, []string{
		"La disponibilidad debe ser un valor booleano",
		"La descripción debe ser una cadena de texto",
		"La URL de la imagen no es válida",
		"Las URLs de las imágenes no son válidas",
	}, msgs(errs))
}

func TestCreateProduct_OptionalFieldsMayBeOmitted(t *testing.T) {
	body := validProduct()
	delete(body, "availability")
	delete(body, "description")
	delete(body, "imageUrl")

	assert.Empty(t, CreateProduct.Validate(Input{Body: body}))
}

func TestCreateProduct_GenderAndQuantity(t *testing.T) {
	body := validProduct()
	body["gender"] = "niño"
	body["quantity"] = json.Number("-1")

	errs := CreateProduct.Validate(Input{Body: body})

	assert.Equal(t, []string{
		"El género debe ser femenino, masculino o unisex",
		"La cantidad debe ser un número entero mayor o igual a 0",
	}, msgs(errs))
}

func TestCreateProduct_NameTooLong(t *testing.T) {
	body := validProduct()
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	body["name"] = string(long)

	errs := CreateProduct.Validate(Input{Body: body})
	assert.Equal(t, []string{"El nombre del producto no puede superar los 100 caracteres"}, msgs(errs))
}

func TestIsIn(t *testing.T) {
	rule := IsIn("fuera de lista", "femenino", "masculino", "unisex")

	for v, want := range map[any]bool{
		"unisex":   true,
		"femenino": true,
		"Unisex":   false,
		"":         false,
		nil:        false,
		"uni sex":  false,
	} {
		assert.Equal(t, want, rule.Check(v), "%v", v)
	}
	assert.False(t, rule.Check([]any{"unisex", "femenino"}))
}

func TestMaxLength_CountsCharactersNotBytes(t *testing.T) {
	rule := MaxLength("muy largo", 5)

	assert.True(t, rule.Check("ñandú"))
	assert.True(t, rule.Check(""))
	assert.True(t, rule.Check(nil))
	assert.False(t, rule.Check("ñandús"))
	assert.True(t, rule.Check(json.Number("12345")))
	assert.False(t, rule.Check(json.Number("123456")))
}

func TestProductID(t *testing.T) {
	cases := map[string]bool{
		"1":             true,
		"42":            true,
		"-3":            true,
		"not-valid-url": false,
		"1.5":           false,
		"":              false,
	}
	for id, ok := range cases {
		errs := ProductID.Validate(Input{Params: map[string]string{"id": id}})
		if ok {
			assert.Empty(t, errs, id)
			continue
		}
		require.Len(t, errs, 1, id)
		assert.Equal(t, "ID no válido", errs[0].Msg)
		assert.Equal(t, LocationParams, errs[0].Location)
	}
}

func TestUpdateProduct_AvailabilityRequired(t *testing.T) {
	in := Input{
		Params: map[string]string{"id": "1"},
		Body:   map[string]any{"name": "Monitor", "price": json.Number("300")},
	}

	errs := UpdateProduct.Validate(in)
	assert.Equal(t, []string{"Valor no válido"}, msgs(errs))
	assert.Equal(t, "availability", errs[0].Path)
}

func TestUpdateProduct_InvalidIDWithValidBody(t *testing.T) {
	in := Input{
		Params: map[string]string{"id": "not-valid-url"},
		Body: map[string]any{
			"name":         "Monitor",
			"price":        json.Number("300"),
			"availability": true,
		},
	}

	errs := UpdateProduct.Validate(in)
	require.Len(t, errs, 1)
	assert.Equal(t, "ID no válido", errs[0].Msg)
}

func TestCreateCategory_TrimsName(t *testing.T) {
	in := bodyOf(t, `{"name":"   "}`)
	errs := CreateCategory.Validate(in)
	assert.Equal(t, []string{"El nombre de la categoría no puede ir vacío"}, msgs(errs))

	in = bodyOf(t, `{"name":"  Ropa  "}`)
	assert.Empty(t, CreateCategory.Validate(in))
	assert.Equal(t, "Ropa", in.String("name"))
}

func TestCreateSubcategory(t *testing.T) {
	errs := CreateSubcategory.Validate(bodyOf(t, `{}`))
	assert.Equal(t, []string{
		"El nombre de la subcategoría no puede ir vacío",
		"Debes asignar una categoría",
	}, msgs(errs))

	assert.Empty(t, CreateSubcategory.Validate(bodyOf(t, `{"name":"Camisetas","categoryId":"abc"}`)))
}

func TestDecodeBody(t *testing.T) {
	body, err := DecodeBody(nil)
	require.NoError(t, err)
	assert.Empty(t, body)

	_, err = DecodeBody([]byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrMalformedBody)

	_, err = DecodeBody([]byte(`null`))
	assert.ErrorIs(t, err, ErrMalformedBody)

	_, err = DecodeBody([]byte(`{"name":`))
	assert.ErrorIs(t, err, ErrMalformedBody)
}

func TestInputAccessors(t *testing.T) {
	in := bodyOf(t, `{"price":"799.50","quantity":50,"availability":"0","tags":["a",1,"b"],"description":null}`)

	price, err := in.Decimal("price")
	require.NoError(t, err)
	assert.Equal(t, "799.5", price.String())

	qty, err := in.Int("quantity")
	require.NoError(t, err)
	assert.Equal(t, 50, qty)

	avail, err := in.Bool("availability")
	require.NoError(t, err)
	assert.False(t, avail)

	assert.Equal(t, []string{"a", "b"}, in.Strings("tags"))
	assert.True(t, in.Has("description"))
	assert.Nil(t, in.StringPtr("description"))
	assert.False(t, in.Has("name"))

	_, err = in.Uint("missing")
	assert.Error(t, err)
}
