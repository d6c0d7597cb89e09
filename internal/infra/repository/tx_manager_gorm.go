package repository

import (
	"context"

	repo "vastram/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders            repo.OrderRepository
	orderItems        repo.OrderItemRepository
	cartItems         repo.CartRepository
	inventory         repo.InventoryRepository
	products          repo.ProductRepository
	shippingAddresses repo.ShippingAddressRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository                       { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository               { return r.orderItems }
func (r *txReposGorm) CartItems() repo.CartRepository                     { return r.cartItems }
func (r *txReposGorm) Inventory() repo.InventoryRepository                { return r.inventory }
func (r *txReposGorm) Products() repo.ProductRepository                   { return r.products }
func (r *txReposGorm) ShippingAddresses() repo.ShippingAddressRepository  { return r.shippingAddresses }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがerrorを返したらロールバック、nilならコミット
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:            NewOrderGormRepository(tx),
			orderItems:        NewOrderItemGormRepository(tx),
			cartItems:         NewCartGormRepository(tx),
			inventory:         NewInventoryGormRepository(tx),
			products:          NewProductGormRepository(tx),
			shippingAddresses: NewShippingAddressGormRepository(tx),
		}
		return fn(r)
	})
}
