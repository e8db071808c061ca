package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stocktrack/internal/activity"
	"stocktrack/internal/auth"
	"stocktrack/internal/httpserver/handlers"
	"stocktrack/internal/inventory"
)

func NewRouter(db *gorm.DB, lg *zap.SugaredLogger) http.Handler {
	sink := activity.NewSink(db)
	items := inventory.NewService(db, sink, lg)
	categories := inventory.NewCategoryService(db, lg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Post("/api/login", handlers.Login(db, lg))
	r.Group(func(protected chi.Router) {
		protected.Use(auth.JWTAuth())
		protected.Route("/api/inventory", func(ir chi.Router) {
			ir.Get("/", handlers.ListItems(items, lg))
			ir.Post("/", handlers.CreateItem(items, lg))
			ir.Get("/archived", handlers.ListArchivedItems(items, lg))
			ir.Get("/{id}", handlers.GetItem(items, lg))
			ir.Put("/{id}", handlers.UpdateItem(items, lg))
			ir.Delete("/{id}", handlers.DeleteItem(items, lg))
			ir.Patch("/{id}/archive", handlers.ArchiveItem(items, lg))
			ir.Patch("/{id}/restore", handlers.RestoreItem(items, lg))
		})
		protected.Route("/api/categories", func(cr chi.Router) {
			cr.Get("/", handlers.ListCategories(categories, lg))
			cr.Post("/", handlers.CreateCategory(categories, lg))
			cr.Get("/{id}", handlers.GetCategory(categories, lg))
			cr.Put("/{id}", handlers.UpdateCategory(categories, lg))
			cr.Delete("/{id}", handlers.DeleteCategory(categories, lg))
		})
		protected.Get("/api/stats", handlers.GetStats(items, lg))
		protected.Post("/api/change-password", handlers.ChangePassword(db, lg))
		protected.Group(func(owner chi.Router) {
			owner.Use(auth.RequireOwner)
			owner.Get("/api/activity-log", handlers.ListActivity(sink, lg))
			owner.Post("/api/activity-log", handlers.CreateActivity(sink, lg))
			owner.Get("/api/reports/inventory", handlers.InventoryReport(items, lg))
			owner.Get("/api/reports/inventory/export", handlers.ExportInventoryReport(items, lg))
			owner.Route("/api/users", func(ur chi.Router) {
				ur.Get("/", handlers.ListUsers(db, lg))
				ur.Post("/", handlers.CreateUser(db, lg))
				ur.Patch("/{id}", handlers.UpdateUser(db, lg))
				ur.Delete("/{id}", handlers.DeleteUser(db, lg))
			})
		})
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
