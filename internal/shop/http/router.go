package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/loomandfold/loom/internal/shop/service"
	"github.com/loomandfold/loom/internal/shop/store"
	"github.com/loomandfold/loom/pkg/httpx"
	"github.com/loomandfold/loom/pkg/jwtx"
	"github.com/loomandfold/loom/pkg/otpx"
	"github.com/loomandfold/loom/pkg/slogx"

	_ "github.com/loomandfold/loom/api/shop" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store      store.Store
	corsOrigin string
	ledger     *otpx.Ledger

	ScopeService   *service.ScopeService
	UserService    *service.UserService
	ShopService    *service.ShopService
	ProductService *service.ProductService
	OrderService   *service.OrderService
	LookService    *service.LookService
	PartnerService *service.PartnerService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	ledger *otpx.Ledger,
	corsOrigin string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		ledger:       ledger,
		corsOrigin:   corsOrigin,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerVendor()
	r.registerAdmin()
	r.registerCustomer()
	r.registerPartner()
	r.registerCatalog()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Loom Shop Platform API
//	@version		0.1.0
//	@description	Session-scoped shop platform backend: vendors manage their own shop,
//	@description	customers order from the public catalog, and admins approve new shops.
//	@description	Sessions are signed tokens minted by the platform identity provider;
//	@description	this service verifies them and derives all tenant scope server-side.
//
//	@contact.name				Loom & Fold Engineering
//	@contact.url				https://github.com/loomandfold/loom
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerVendor() {
	shopHandler := &ShopHandler{
		ScopeService: r.ScopeService,
		ShopService:  r.ShopService,
	}
	r.Mux.Handle("GET /v1/shop",
		httpx.Chain(shopHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	products := &ProductsHandler{
		ScopeService:   r.ScopeService,
		ProductService: r.ProductService,
	}

	// All product routes share the same chain: session, then scope
	// derivation inside the handler. Writes get the moderate profile.
	list := httpx.Chain(http.HandlerFunc(products.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	get := httpx.Chain(http.HandlerFunc(products.HandleGet),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	create := httpx.Chain(http.HandlerFunc(products.HandleCreate),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	update := httpx.Chain(http.HandlerFunc(products.HandleUpdate),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	del := httpx.Chain(http.HandlerFunc(products.HandleDelete),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/products", list)
	r.Mux.Handle("POST /v1/products", create)
	r.Mux.Handle("GET /v1/products/{id}", get)
	r.Mux.Handle("PUT /v1/products/{id}", update)
	r.Mux.Handle("DELETE /v1/products/{id}", del)

	orders := &VendorOrdersHandler{
		ScopeService: r.ScopeService,
		OrderService: r.OrderService,
	}
	r.Mux.Handle("GET /v1/orders",
		httpx.Chain(http.HandlerFunc(orders.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/orders/{id}/ship",
		httpx.Chain(http.HandlerFunc(orders.HandleShip),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminShopsHandler{ShopService: r.ShopService}

	list := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole("admin"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	approve := httpx.Chain(http.HandlerFunc(h.HandleApprove),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole("admin"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/admin/shops", list)
	r.Mux.Handle("POST /v1/admin/shops/{id}/approve", approve)
}

func (r *Router) registerCustomer() {
	me := &ProfileHandler{UserService: r.UserService}
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(me,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	myOrders := &MyOrdersHandler{OrderService: r.OrderService}
	r.Mux.Handle("GET /v1/my/orders",
		httpx.Chain(http.HandlerFunc(myOrders.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/my/orders",
		httpx.Chain(http.HandlerFunc(myOrders.HandlePlace),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	looks := &LooksHandler{LookService: r.LookService}
	r.Mux.Handle("GET /v1/looks",
		httpx.Chain(looks,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPartner() {
	h := &PartnerHandler{
		PartnerService: r.PartnerService,
		Ledger:         r.ledger,
	}

	// Public signup endpoints. Strict by IP: register sends email,
	// verify takes code guesses.
	r.Mux.Handle("POST /v1/partners/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/partners/register/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerCatalog() {
	h := &CatalogHandler{ProductService: r.ProductService}

	// Public read-only surface consumed by the mobile client from a
	// fixed origin.
	list := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.CORSMiddleware(r.corsOrigin),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)
	get := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.CORSMiddleware(r.corsOrigin),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)

	r.Mux.Handle("GET /v1/catalog/products", list)
	r.Mux.Handle("OPTIONS /v1/catalog/products", list)
	r.Mux.Handle("GET /v1/catalog/products/{id}", get)
	r.Mux.Handle("OPTIONS /v1/catalog/products/{id}", get)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /metrics", httpx.MetricsHandler())
}
