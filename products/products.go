package products

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"quickcart/models"
	"quickcart/store"
	"quickcart/utils"
)

// GetProducts lists the catalog with filtering, sorting and pagination.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, errMsg := utils.ParsePagination(r, 4)
	if errMsg != "" {
		utils.SendError(w, http.StatusBadRequest, "Invalid pagination", errMsg)
		return
	}

	q := r.URL.Query()
	filtered := store.Products.All()

	if category := q.Get("category"); category != "" {
		filtered = filter(filtered, func(p models.Product) bool {
			return utils.ContainsIgnoreCase(p.Category, category)
		})
	}
	if raw := q.Get("minPrice"); raw != "" {
		if min, err := strconv.ParseFloat(raw, 64); err == nil {
			filtered = filter(filtered, func(p models.Product) bool { return p.OfferPrice >= min })
		}
	}
	if raw := q.Get("maxPrice"); raw != "" {
		if max, err := strconv.ParseFloat(raw, 64); err == nil {
			filtered = filter(filtered, func(p models.Product) bool { return p.OfferPrice <= max })
		}
	}
	if raw := q.Get("inStock"); raw != "" {
		want := raw == "true"
		filtered = filter(filtered, func(p models.Product) bool { return p.InStock == want })
	}
	if search := q.Get("search"); search != "" {
		filtered = filter(filtered, func(p models.Product) bool { return matchesSearch(p, search) })
	}

	sortProducts(filtered, q.Get("sortBy"), q.Get("sortOrder"))

	start, end, meta := utils.Paginate(len(filtered), page, limit)
	utils.SendPage(w, filtered[start:end], meta, "Products retrieved successfully")
}

// GetProduct returns a single product by id.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	product, found := store.Products.Get(id)
	if !found {
		utils.SendError(w, http.StatusNotFound, "Product not found",
			fmt.Sprintf("Product with ID %d does not exist", id))
		return
	}

	utils.SendData(w, http.StatusOK, product, "Product retrieved successfully")
}

type productInput struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	OfferPrice     float64           `json:"offerPrice"`
	Category       string            `json:"category"`
	CategoryID     *int              `json:"categoryId"`
	Image          []string          `json:"image"`
	Brand          string            `json:"brand"`
	Quantity       int               `json:"quantity"`
	Tags           []string          `json:"tags"`
	Specifications map[string]string `json:"specifications"`
}

// CreateProduct appends a new product with the next id.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in productInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	if details := validateProduct(in); len(details) > 0 {
		utils.SendValidationError(w, details)
		return
	}

	offerPrice := in.OfferPrice
	if offerPrice == 0 {
		offerPrice = in.Price
	}
	if in.Image == nil {
		in.Image = []string{}
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	if in.Specifications == nil {
		in.Specifications = map[string]string{}
	}

	now := time.Now().UTC()
	product := store.Products.Create(models.Product{
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		OfferPrice:     offerPrice,
		Category:       in.Category,
		CategoryID:     in.CategoryID,
		Image:          in.Image,
		Brand:          in.Brand,
		InStock:        true,
		Quantity:       in.Quantity,
		Tags:           in.Tags,
		Specifications: in.Specifications,
		CreatedAt:      now,
		UpdatedAt:      now,
	})

	utils.SendData(w, http.StatusCreated, product, "Product created successfully")
}

type productUpdate struct {
	Name           *string            `json:"name"`
	Description    *string            `json:"description"`
	Price          *float64           `json:"price"`
	OfferPrice     *float64           `json:"offerPrice"`
	Category       *string            `json:"category"`
	CategoryID     *int               `json:"categoryId"`
	Image          *[]string          `json:"image"`
	Brand          *string            `json:"brand"`
	InStock        *bool              `json:"inStock"`
	Quantity       *int               `json:"quantity"`
	Ratings        *float64           `json:"ratings"`
	Reviews        *int               `json:"reviews"`
	Tags           *[]string          `json:"tags"`
	Specifications *map[string]string `json:"specifications"`
}

// UpdateProduct merges the supplied fields into the stored product. The id
// is immutable and updatedAt is bumped.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	var in productUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	updated, found := store.Products.Update(id, func(p *models.Product) {
		applyProductUpdate(p, in)
		p.UpdatedAt = time.Now().UTC()
	})
	if !found {
		utils.SendError(w, http.StatusNotFound, "Product not found",
			fmt.Sprintf("Product with ID %d does not exist", id))
		return
	}

	utils.SendData(w, http.StatusOK, updated, "Product updated successfully")
}

// DeleteProduct removes the product and returns it.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	deleted, found := store.Products.Delete(id)
	if !found {
		utils.SendError(w, http.StatusNotFound, "Product not found",
			fmt.Sprintf("Product with ID %d does not exist", id))
		return
	}

	utils.SendData(w, http.StatusOK, deleted, "Product deleted successfully")
}

// GetProductsByCategory lists products whose categoryId matches, unpaginated.
func GetProductsByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID, ok := utils.ParseID(ps, "categoryId")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	matched := filter(store.Products.All(), func(p models.Product) bool {
		return p.CategoryID != nil && *p.CategoryID == categoryID
	})

	utils.SendCount(w, matched, len(matched), "Products by category retrieved successfully")
}

func matchesSearch(p models.Product, term string) bool {
	if utils.ContainsIgnoreCase(p.Name, term) || utils.ContainsIgnoreCase(p.Description, term) {
		return true
	}
	for _, tag := range p.Tags {
		if utils.ContainsIgnoreCase(tag, term) {
			return true
		}
	}
	return false
}

func sortProducts(ps []models.Product, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}
	less := productLess(sortBy)
	if less == nil {
		return
	}
	sort.SliceStable(ps, func(i, j int) bool {
		if sortOrder == "desc" {
			return less(ps[j], ps[i])
		}
		return less(ps[i], ps[j])
	})
}

func productLess(sortBy string) func(a, b models.Product) bool {
	switch sortBy {
	case "name":
		return func(a, b models.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "brand":
		return func(a, b models.Product) bool { return strings.ToLower(a.Brand) < strings.ToLower(b.Brand) }
	case "category":
		return func(a, b models.Product) bool { return strings.ToLower(a.Category) < strings.ToLower(b.Category) }
	case "price":
		return func(a, b models.Product) bool { return a.Price < b.Price }
	case "offerPrice":
		return func(a, b models.Product) bool { return a.OfferPrice < b.OfferPrice }
	case "ratings":
		return func(a, b models.Product) bool { return a.Ratings < b.Ratings }
	case "quantity":
		return func(a, b models.Product) bool { return a.Quantity < b.Quantity }
	case "reviews":
		return func(a, b models.Product) bool { return a.Reviews < b.Reviews }
	case "createdAt":
		return func(a, b models.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return nil
	}
}

func applyProductUpdate(p *models.Product, in productUpdate) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.OfferPrice != nil {
		p.OfferPrice = *in.OfferPrice
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.CategoryID != nil {
		p.CategoryID = in.CategoryID
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.Ratings != nil {
		p.Ratings = *in.Ratings
	}
	if in.Reviews != nil {
		p.Reviews = *in.Reviews
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.Specifications != nil {
		p.Specifications = *in.Specifications
	}
}

func filter(ps []models.Product, keep func(models.Product) bool) []models.Product {
	out := ps[:0:0]
	for _, p := range ps {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
