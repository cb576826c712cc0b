package manager

import (
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/antauren/star-burger/internal/domain"
	"github.com/antauren/star-burger/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	Restaurants *service.RestaurantService
	Products    *service.ProductService
	Menu        *service.MenuService
	Orders      service.OrderServiceInterface
	Matcher     service.MatcherInterface
	Auth        *Auth

	templates *template.Template
}

func NewHandler(restSvc *service.RestaurantService, productSvc *service.ProductService,
	menuSvc *service.MenuService, orderSvc service.OrderServiceInterface,
	matcher service.MatcherInterface, auth *Auth) *Handler {
	return &Handler{
		Restaurants: restSvc,
		Products:    productSvc,
		Menu:        menuSvc,
		Orders:      orderSvc,
		Matcher:     matcher,
		Auth:        auth,
		templates:   template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/manager/login", h.loginForm).Methods("GET")
	r.HandleFunc("/manager/login", h.login).Methods("POST")
	r.HandleFunc("/manager/logout", h.logout).Methods("GET")

	r.HandleFunc("/manager/restaurants", h.Auth.RequireStaff(h.viewRestaurants)).Methods("GET")
	r.HandleFunc("/manager/products", h.Auth.RequireStaff(h.viewProducts)).Methods("GET")
	r.HandleFunc("/manager/orders", h.Auth.RequireStaff(h.viewOrders)).Methods("GET")
	r.HandleFunc("/manager/orders/{id}/process", h.Auth.RequireStaff(h.processOrder)).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "manager",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[manager] template %s: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", nil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.Auth.Login(r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		h.render(w, "login.html", map[string]bool{"Invalid": true})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
	})
	http.Redirect(w, r, "/manager/orders", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:    sessionCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
	})
	http.Redirect(w, r, "/manager/login", http.StatusFound)
}

func (h *Handler) viewRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.render(w, "restaurants.html", map[string]interface{}{
		"Restaurants": restaurants,
	})
}

type productRow struct {
	Product      domain.Product
	Availability []bool
}

// viewProducts renders the product x restaurant availability matrix.
func (h *Handler) viewProducts(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	products, err := h.Products.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	menuItems, err := h.Menu.ListItems()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	availability := make(map[int]map[int]bool)
	for _, item := range menuItems {
		if availability[item.ProductID] == nil {
			availability[item.ProductID] = make(map[int]bool)
		}
		availability[item.ProductID][item.RestaurantID] = item.Availability
	}

	rows := make([]productRow, 0, len(products))
	for _, product := range products {
		row := productRow{Product: product}
		for _, rest := range restaurants {
			row.Availability = append(row.Availability, availability[product.ID][rest.ID])
		}
		rows = append(rows, row)
	}

	h.render(w, "products.html", map[string]interface{}{
		"Restaurants": restaurants,
		"Rows":        rows,
	})
}

type orderRow struct {
	Order       domain.Order
	Restaurants []domain.RestaurantDistance
}

// viewOrders lists all orders, each with its total and the restaurants
// able to cook it ranked by distance to the delivery address.
func (h *Handler) viewOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rows := make([]orderRow, 0, len(orders))
	for _, order := range orders {
		items, err := h.Orders.Items(order.ID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		order.Items = items

		candidates, err := h.Matcher.Candidates(r.Context(), order.Address, items)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		rows = append(rows, orderRow{Order: order, Restaurants: candidates})
	}

	h.render(w, "orders.html", map[string]interface{}{
		"Orders": rows,
	})
}

func (h *Handler) processOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Orders.MarkProcessed(orderID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Redirect(w, r, "/manager/orders", http.StatusFound)
}
