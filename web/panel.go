package web

import (
	"net/http"

	"github.com/RafaelMenegalli/pizzaria-frontend/internal/apiclient"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/backend"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/guard"
)

// Notification texts owned by the web pages.
const (
	msgProductCreated     = "Produto cadastrado com sucesso!"
	msgProductFailed      = "Erro ao cadastrar produto"
	msgInvalidImage       = "Apenas imagens do tipo PNG/JPG são aceitos!"
	msgFillAllFields      = "Preencha todos os campos!"
	msgMissingCredentials = "Preencha todos os campos para continuar!"
)

// maxProductImageBytes bounds the multipart form held in memory.
const maxProductImageBytes = 10 << 20

type dashboardData struct {
	Orders []backend.Order
}

func (h *Handler) handleDashboardGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.V(3).Info("Access", "method", r.Method, "path", r.URL.Path, "remote_ip", r.RemoteAddr)

		user, ok := h.restoreSession(w, r)
		if !ok {
			return // token rejected; already cleared and redirected to login
		}

		client, ok := guard.ClientFromContext(r.Context())
		if !ok {
			h.logger.Error(nil, "request-bound client missing; route not guarded?", "path", r.URL.Path)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		orders, err := client.ListOrders(r.Context())
		if err != nil {
			if apiclient.IsUnauthorized(err) {
				h.forceSignOut(w, r)
				return
			}
			h.logger.Error(err, "listing orders")
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
			return
		}

		h.render(w, r, "dashboard", "Painel - Sujeito Pizzaria", &user, dashboardData{Orders: orders})
	}
}

type orderDetailData struct {
	OrderID string
	Items   []backend.OrderItem
}

func (h *Handler) handleOrderDetailGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.V(3).Info("Access", "method", r.Method, "path", r.URL.Path, "remote_ip", r.RemoteAddr)

		orderID := r.URL.Query().Get("order_id")
		if orderID == "" {
			http.Redirect(w, r, guard.LandingPath, http.StatusSeeOther)
			return
		}

		user, ok := h.restoreSession(w, r)
		if !ok {
			return
		}

		client, ok := guard.ClientFromContext(r.Context())
		if !ok {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		items, err := client.OrderDetail(r.Context(), orderID)
		if err != nil {
			if apiclient.IsUnauthorized(err) {
				h.forceSignOut(w, r)
				return
			}
			h.logger.Error(err, "fetching order detail", "order_id", orderID)
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
			return
		}

		h.render(w, r, "order_detail", "Detalhes do pedido - Sujeito Pizzaria", &user, orderDetailData{OrderID: orderID, Items: items})
	}
}

type productFormData struct {
	Categories []backend.Category
}

func (h *Handler) handleProductGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.V(3).Info("Access", "method", r.Method, "path", r.URL.Path, "remote_ip", r.RemoteAddr)

		user, ok := h.restoreSession(w, r)
		if !ok {
			return
		}

		client, ok := guard.ClientFromContext(r.Context())
		if !ok {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		categories, err := client.ListCategories(r.Context())
		if err != nil {
			if apiclient.IsUnauthorized(err) {
				h.forceSignOut(w, r)
				return
			}
			h.logger.Error(err, "listing categories")
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
			return
		}

		h.render(w, r, "product", "Novo Produto - Sujeito Pizza", &user, productFormData{Categories: categories})
	}
}

func (h *Handler) handleProductPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.V(3).Info("Access", "method", r.Method, "path", r.URL.Path, "remote_ip", r.RemoteAddr)

		if err := r.ParseMultipartForm(maxProductImageBytes); err != nil {
			h.logger.Error(err, "parsing multipart form from POST /product")
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}

		name := r.FormValue("name")
		price := r.FormValue("price")
		description := r.FormValue("description")
		categoryID := r.FormValue("category_id")

		file, header, err := r.FormFile("file")
		if err != nil || name == "" || price == "" || description == "" || categoryID == "" {
			h.toasts.Warning(w, r, msgFillAllFields)
			http.Redirect(w, r, "/product", http.StatusSeeOther)
			return
		}
		defer file.Close()

		// upload-format check happens before any request is issued
		contentType := header.Header.Get("Content-Type")
		if contentType != "image/png" && contentType != "image/jpeg" {
			h.toasts.Warning(w, r, msgInvalidImage)
			http.Redirect(w, r, "/product", http.StatusSeeOther)
			return
		}

		client, ok := guard.ClientFromContext(r.Context())
		if !ok {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		err = client.CreateProduct(r.Context(), backend.NewProduct{
			Name:        name,
			Price:       price,
			Description: description,
			CategoryID:  categoryID,
			FileName:    header.Filename,
			File:        file,
		})
		if err != nil {
			if apiclient.IsUnauthorized(err) {
				h.forceSignOut(w, r)
				return
			}
			h.logger.Error(err, "registering product", "name", name)
			h.toasts.Error(w, r, msgProductFailed)
			http.Redirect(w, r, "/product", http.StatusSeeOther)
			return
		}

		h.toasts.Success(w, r, msgProductCreated)
		http.Redirect(w, r, "/product", http.StatusSeeOther)
	}
}

// forceSignOut handles an API token rejection discovered mid-page: token
// cleared, session gone, back to login.
func (h *Handler) forceSignOut(w http.ResponseWriter, r *http.Request) {
	mgr, _ := h.newManager(w, r)
	mgr.SignOut()
}
