package store

import (
	"context"
	"errors"
	"time"

	"github.com/loomandfold/loom/internal/shop/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
//
// Every method that touches shop-owned rows takes the shop id as an
// explicit parameter and ANDs it into the query. There is deliberately no
// unscoped variant of those lookups; a handler cannot forget the filter.
type Store interface {
	Users() Users
	Shops() Shops
	Products() Products
	Orders() Orders
	Looks() Looks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step operations (e.g. partner signup
	// which creates a user and their pending shop together).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during registration to reject duplicates.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error
}

type Shops interface {
	// GetShopByID fetches a shop regardless of owner (admin surface).
	GetShopByID(ctx context.Context, id string) (domain.Shop, error)

	// GetShopByOwner is the scope derivation query: one read keyed by the
	// authenticated owner's user id. ErrNotFound means the identity owns
	// no shop.
	GetShopByOwner(ctx context.Context, ownerUserID string) (domain.Shop, error)

	// CreateShop inserts a new shop. Fails with ErrAlreadyExists when the
	// owner already has one (unique owner_user_id).
	CreateShop(ctx context.Context, s domain.Shop) error

	// ListShops returns all shops ordered by creation date, newest first
	// (admin surface).
	ListShops(ctx context.Context) ([]domain.Shop, error)

	// ApproveShop flips a pending shop to active.
	ApproveShop(ctx context.Context, shopID string) error

	// DeleteStalePendingShops removes pending shops older than cutoff
	// (housekeeping).
	DeleteStalePendingShops(ctx context.Context, cutoff time.Time) (int64, error)
}

type Products interface {
	// GetProduct fetches one product of the given shop. A product that
	// exists under a different shop id is ErrNotFound from this scope.
	GetProduct(ctx context.Context, shopID, productID string) (domain.Product, error)

	// ListProducts returns all products of one shop, newest first.
	ListProducts(ctx context.Context, shopID string) ([]domain.Product, error)

	// CreateProduct inserts a product under the given shop.
	CreateProduct(ctx context.Context, p domain.Product) error

	// UpdateProduct updates a product in place, matching on both shop id
	// and product id.
	UpdateProduct(ctx context.Context, p domain.Product) error

	// DecrementStock atomically subtracts quantity from a product's
	// stock. ErrNotFound when the product is missing or the remaining
	// stock would go negative; the guard and the write are one
	// statement, so stock can never oversell.
	DecrementStock(ctx context.Context, productID string, quantity int64) error

	// DeleteProduct removes a product, matching on both shop id and
	// product id.
	DeleteProduct(ctx context.Context, shopID, productID string) error

	// GetPublishedProduct fetches one published product of an active shop
	// (public catalog; no session scope involved).
	GetPublishedProduct(ctx context.Context, productID string) (domain.Product, error)

	// ListPublishedProducts returns published products of active shops.
	ListPublishedProducts(ctx context.Context) ([]domain.Product, error)
}

type Orders interface {
	// CreateOrder inserts a new order.
	CreateOrder(ctx context.Context, o domain.Order) error

	// GetShopOrder fetches one order of the given shop (vendor view).
	GetShopOrder(ctx context.Context, shopID, orderID string) (domain.Order, error)

	// ListShopOrders returns orders of one shop, newest first.
	ListShopOrders(ctx context.Context, shopID string) ([]domain.Order, error)

	// ListCustomerOrders returns orders placed by one customer.
	ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error)

	// UpdateOrderStatus sets the status of an order, matching on both
	// shop id and order id.
	UpdateOrderStatus(ctx context.Context, shopID, orderID string, status domain.OrderStatus) error

	// DeleteCancelledOrdersBefore removes cancelled orders past retention
	// (housekeeping).
	DeleteCancelledOrdersBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Looks interface {
	// ListLooksByCustomer returns stored outfit results for one customer.
	ListLooksByCustomer(ctx context.Context, customerID string) ([]domain.Look, error)

	// CreateLook stores an outfit result (written by the pipeline that
	// computes them, outside this service; kept here for seeding).
	CreateLook(ctx context.Context, l domain.Look) error
}
