package docs

// ProductInput documents the body accepted by POST and PUT /products.
type ProductInput struct {
	Name          string   `json:"name" example:"Camiseta básica"`
	Price         float64  `json:"price" example:"19.99"`
	Availability  bool     `json:"availability" example:"true"`
	Gender        string   `json:"gender" enums:"femenino,masculino,unisex" example:"unisex"`
	Description   string   `json:"description,omitempty" example:"Algodón 100%"`
	Quantity      int      `json:"quantity" example:"25"`
	ImageURL      string   `json:"imageUrl,omitempty" example:"https://cdn.example.com/camiseta.jpg"`
	ImageURLs     []string `json:"imageUrls,omitempty"`
	CategoryID    int      `json:"categoryId" example:"1"`
	SubcategoryID int      `json:"subcategoryId" example:"1"`
}

// CategoryInput documents the body accepted by POST /categories.
type CategoryInput struct {
	Name string `json:"name" example:"Ropa"`
}

// SubcategoryInput documents the body accepted by POST /subcategories.
type SubcategoryInput struct {
	Name       string `json:"name" example:"Camisetas"`
	CategoryID int    `json:"categoryId" example:"1"`
}
