// Package store holds the process-wide in-memory collections. Nothing here
// survives a restart: every boot reinstalls the seed fixtures.
package store

var (
	Products   *ProductStore
	Categories *CategoryStore
	Users      *UserStore
	Orders     *OrderStore
)

// Reset reinstalls the seed fixtures. Called once at init and by tests that
// need a clean dataset.
func Reset() {
	Products = newProductStore(seedProducts())
	Categories = newCategoryStore(seedCategories())
	Users = newUserStore(seedUsers())
	Orders = newOrderStore(seedOrders())
}

func init() {
	Reset()
}
