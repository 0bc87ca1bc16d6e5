package validation

import "catalogo/internal/model"

func genderValues() []string {
	out := make([]string, len(model.Genders))
	for i, g := range model.Genders {
		out[i] = string(g)
	}
	return out
}

// ProductID guards every /products/:id route.
var ProductID = Schema{
	Param("id", IsInt("ID no válido")),
}

func productPrice() Field {
	return Body("price",
		IsNumeric("Valor no válido"),
		NotEmpty("El precio del producto no puede ir vacío"),
		Positive("Precio no válido"),
	)
}

func productName() Field {
	return Body("name",
		NotEmpty("El nombre del producto no puede ir vacío"),
		IsString("El nombre del producto debe ser una cadena de texto"),
		MaxLength("El nombre del producto no puede superar los 100 caracteres", 100),
	)
}

var (
	gender = Body("gender",
		NotEmpty("El género no puede ir vacío"),
		IsIn("El género debe ser femenino, masculino o unisex", genderValues()...),
	)
	description = Body("description",
		IsString("La descripción debe ser una cadena de texto"),
	).Optional()
	quantity = Body("quantity",
		IsIntMin("La cantidad debe ser un número entero mayor o igual a 0", 0),
		NotEmpty("La cantidad no puede ir vacía"),
	)
	imageURL = Body("imageUrl",
		IsURL("La URL de la imagen no es válida"),
	).Optional()
	imageURLs = Body("imageUrls",
		IsURLList("Las URLs de las imágenes no son válidas"),
	).Optional()
	categoryID = Body("categoryId",
		IsInt("El ID de la categoría debe ser un número entero"),
		NotEmpty("El ID de la categoría no puede ir vacío"),
	)
	subcategoryID = Body("subcategoryId",
		IsInt("El ID de la subcategoría debe ser un número entero"),
		NotEmpty("El ID de la subcategoría no puede ir vacío"),
	)
)

// CreateProduct validates POST /products.
var CreateProduct = Schema{
	productName(),
	productPrice(),
	Body("availability",
		IsBoolean("La disponibilidad debe ser un valor booleano"),
	).Optional(),
	gender,
	description,
	quantity,
	imageURL,
	imageURLs,
	categoryID,
	subcategoryID,
}

// UpdateProduct validates PUT /products/:id. Availability is mandatory here,
// the remaining product attributes are checked only when sent.
var UpdateProduct = Schema{
	Param("id", IsInt("ID no válido")),
	productName(),
	productPrice(),
	Body("availability", IsBoolean("Valor no válido")),
	gender.Optional(),
	description,
	quantity.Optional(),
	imageURL,
	imageURLs,
	categoryID.Optional(),
	subcategoryID.Optional(),
}

// CreateCategory validates POST /categories.
var CreateCategory = Schema{
	Body("name",
		NotEmpty("El nombre de la categoría no puede ir vacío"),
		MaxLength("El nombre de la categoría no puede superar los 50 caracteres", 50),
	).Trim(),
}

// CreateSubcategory validates POST /subcategories. categoryId is only checked
// for presence.
var CreateSubcategory = Schema{
	Body("name",
		NotEmpty("El nombre de la subcategoría no puede ir vacío"),
		MaxLength("El nombre de la subcategoría no puede superar los 50 caracteres", 50),
	).Trim(),
	Body("categoryId", NotEmpty("Debes asignar una categoría")),
}
