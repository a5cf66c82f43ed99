package categories

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

// GetCategories lists categories with optional tree structure.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, errMsg := utils.ParsePagination(r, 50)
	if errMsg != "" {
		utils.SendError(w, http.StatusBadRequest, "Invalid pagination", errMsg)
		return
	}

	q := r.URL.Query()
	all := store.Categories.All()

	if q.Get("tree") == "true" {
		utils.SendData(w, http.StatusOK, buildTree(all, nil), "Category tree retrieved successfully")
		return
	}

	filtered := all
	if q.Has("parentId") {
		raw := q.Get("parentId")
		if raw == "null" || raw == "" {
			filtered = filter(filtered, func(c models.Category) bool { return c.ParentID == nil })
		} else if parentID, err := strconv.Atoi(raw); err == nil {
			filtered = filter(filtered, func(c models.Category) bool {
				return c.ParentID != nil && *c.ParentID == parentID
			})
		}
	}
	if raw := q.Get("isActive"); raw != "" {
		want := raw == "true"
		filtered = filter(filtered, func(c models.Category) bool { return c.IsActive == want })
	}
	if search := q.Get("search"); search != "" {
		filtered = filter(filtered, func(c models.Category) bool {
			return utils.ContainsIgnoreCase(c.Name, search) || utils.ContainsIgnoreCase(c.Description, search)
		})
	}

	sortBy := q.Get("sortBy")
	if sortBy == "" {
		sortBy = "sortOrder"
	}
	sortCategories(filtered, sortBy, q.Get("sortOrder"))

	start, end, meta := utils.Paginate(len(filtered), page, limit)
	utils.SendPage(w, filtered[start:end], meta, "Categories retrieved successfully")
}

// GetCategory returns a category together with its direct children.
func GetCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	category, found := store.Categories.Get(id)
	if !found {
		utils.SendError(w, http.StatusNotFound, "Category not found",
			fmt.Sprintf("Category with ID %d does not exist", id))
		return
	}

	utils.SendData(w, http.StatusOK, withChildren(category), "Category retrieved successfully")
}

type categoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *int   `json:"parentId"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"isActive"`
	SortOrder   *int   `json:"sortOrder"`
}

// CreateCategory derives the slug from the name and rejects duplicates.
// Slug uniqueness is only checked here, not guaranteed under concurrent
// inserts.
func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in categoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	if in.Name == "" {
		utils.SendError(w, http.StatusBadRequest, "Missing required fields", "Category name is required")
		return
	}
	if in.ParentID != nil {
		if _, found := store.Categories.Get(*in.ParentID); !found {
			utils.SendError(w, http.StatusBadRequest, "Invalid parent category", "Parent category does not exist")
			return
		}
	}

	slug := utils.Slugify(in.Name)
	if _, exists := store.Categories.GetBySlug(slug); exists {
		utils.SendError(w, http.StatusBadRequest, "Category already exists",
			"A category with this name already exists")
		return
	}

	sortOrder := maxSiblingSortOrder(in.ParentID) + 1
	if in.SortOrder != nil {
		sortOrder = *in.SortOrder
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	image := in.Image
	if image == "" {
		image = "/images/default-category.jpg"
	}

	now := time.Now().UTC()
	category := store.Categories.Create(models.Category{
		Name:        in.Name,
		Description: in.Description,
		Slug:        slug,
		Image:       image,
		ParentID:    in.ParentID,
		IsActive:    isActive,
		SortOrder:   sortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	utils.SendData(w, http.StatusCreated, category, "Category created successfully")
}

type categoryUpdate struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	ParentID     *int    `json:"parentId"`
	Image        *string `json:"image"`
	IsActive     *bool   `json:"isActive"`
	SortOrder    *int    `json:"sortOrder"`
	ProductCount *int    `json:"productCount"`
}

// UpdateCategory merges the supplied fields. A rename re-derives the slug
// with a duplicate check; a parent change is validated against self-reference
// and existence.
func UpdateCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	current, found := store.Categories.Get(id)
	if !found {
		utils.SendError(w, http.StatusNotFound, "Category not found",
			fmt.Sprintf("Category with ID %d does not exist", id))
		return
	}

	var in categoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	newSlug := ""
	if in.Name != nil && *in.Name != current.Name {
		newSlug = utils.Slugify(*in.Name)
		if existing, exists := store.Categories.GetBySlug(newSlug); exists && existing.ID != id {
			utils.SendError(w, http.StatusBadRequest, "Category name already exists",
				"A category with this name already exists")
			return
		}
	}
	if in.ParentID != nil {
		if *in.ParentID == id {
			utils.SendError(w, http.StatusBadRequest, "Invalid parent", "Category cannot be parent of itself")
			return
		}
		if _, exists := store.Categories.Get(*in.ParentID); !exists {
			utils.SendError(w, http.StatusBadRequest, "Invalid parent category", "Parent category does not exist")
			return
		}
	}

	updated, _ := store.Categories.Update(id, func(c *models.Category) {
		applyCategoryUpdate(c, in)
		if newSlug != "" {
			c.Slug = newSlug
		}
		c.UpdatedAt = time.Now().UTC()
	})

	utils.SendData(w, http.StatusOK, updated, "Category updated successfully")
}

// DeleteCategory refuses to remove categories with subcategories or with a
// non-zero product count.
func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	category, found := store.Categories.Get(id)
	if !found {
		utils.SendError(w, http.StatusNotFound, "Category not found",
			fmt.Sprintf("Category with ID %d does not exist", id))
		return
	}

	for _, c := range store.Categories.All() {
		if c.ParentID != nil && *c.ParentID == id {
			utils.SendError(w, http.StatusBadRequest, "Cannot delete category",
				"Category has subcategories. Please delete or move subcategories first.")
			return
		}
	}
	if category.ProductCount > 0 {
		utils.SendError(w, http.StatusBadRequest, "Cannot delete category",
			"Category has products. Please move or delete products first.")
		return
	}

	deleted, _ := store.Categories.Delete(id)
	utils.SendData(w, http.StatusOK, deleted, "Category deleted successfully")
}

// GetCategoryBySlug resolves a category by its slug.
func GetCategoryBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")

	category, found := store.Categories.GetBySlug(slug)
	if !found {
		utils.SendError(w, http.StatusNotFound, "Category not found",
			fmt.Sprintf("Category with slug '%s' does not exist", slug))
		return
	}

	utils.SendData(w, http.StatusOK, withChildren(category), "Category retrieved successfully")
}

// GetChildCategories lists the direct children of a parent ("null" for roots),
// ordered by sortOrder.
func GetChildCategories(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	raw := ps.ByName("parentId")

	var parentID *int
	if raw != "null" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
			return
		}
		parentID = &id
	}

	children := filter(store.Categories.All(), func(c models.Category) bool {
		return sameParent(c.ParentID, parentID)
	})
	sort.SliceStable(children, func(i, j int) bool { return children[i].SortOrder < children[j].SortOrder })

	utils.SendCount(w, children, len(children), "Child categories retrieved successfully")
}

type categoryWithChildren struct {
	models.Category
	Children []models.Category `json:"children"`
}

func withChildren(category models.Category) categoryWithChildren {
	children := filter(store.Categories.All(), func(c models.Category) bool {
		return c.ParentID != nil && *c.ParentID == category.ID
	})
	return categoryWithChildren{Category: category, Children: children}
}

// buildTree resolves the parentId self-references recursively. The tree is
// never stored, only derived on read.
func buildTree(all []models.Category, parentID *int) []models.CategoryNode {
	nodes := []models.CategoryNode{}
	for _, c := range all {
		if sameParent(c.ParentID, parentID) {
			nodes = append(nodes, models.CategoryNode{
				Category: c,
				Children: buildTree(all, &c.ID),
			})
		}
	}
	return nodes
}

func sameParent(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func maxSiblingSortOrder(parentID *int) int {
	max := 0
	for _, c := range store.Categories.All() {
		if sameParent(c.ParentID, parentID) && c.SortOrder > max {
			max = c.SortOrder
		}
	}
	return max
}

func sortCategories(cs []models.Category, sortBy, sortOrder string) {
	less := categoryLess(sortBy)
	if less == nil {
		return
	}
	sort.SliceStable(cs, func(i, j int) bool {
		if sortOrder == "desc" {
			return less(cs[j], cs[i])
		}
		return less(cs[i], cs[j])
	})
}

func categoryLess(sortBy string) func(a, b models.Category) bool {
	switch sortBy {
	case "sortOrder":
		return func(a, b models.Category) bool { return a.SortOrder < b.SortOrder }
	case "name":
		return func(a, b models.Category) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "createdAt":
		return func(a, b models.Category) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return nil
	}
}

func applyCategoryUpdate(c *models.Category, in categoryUpdate) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.ParentID != nil {
		c.ParentID = in.ParentID
	}
	if in.Image != nil {
		c.Image = *in.Image
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		c.SortOrder = *in.SortOrder
	}
	if in.ProductCount != nil {
		c.ProductCount = *in.ProductCount
	}
}

func filter(cs []models.Category, keep func(models.Category) bool) []models.Category {
	out := cs[:0:0]
	for _, c := range cs {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
