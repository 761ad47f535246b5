package admin

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/eskrenkovic/storefront-admin/internal/format"
	"github.com/eskrenkovic/storefront-admin/internal/modules/core"
	"github.com/eskrenkovic/storefront-admin/internal/ui"

	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

type Hub struct {
	Slug        string
	Title       string
	Description string
	Feature     string
}

var Hubs = []Hub{
	{
		Slug:        "analytics",
		Title:       "Analytics",
		Description: "Track sales, traffic and conversion across your storefront.",
		Feature:     "Sales and traffic dashboards",
	},
	{
		Slug:        "content",
		Title:       "Content",
		Description: "Manage pages, blog posts and the copy shown to shoppers.",
		Feature:     "Page and blog editor",
	},
	{
		Slug:        "marketing",
		Title:       "Marketing",
		Description: "Plan campaigns, discounts and email promotions.",
		Feature:     "Campaigns and discount codes",
	},
	{
		Slug:        "media",
		Title:       "Media",
		Description: "Upload and organise product images, videos and documents.",
		Feature:     "Media library",
	},
	{
		Slug:        "settings",
		Title:       "Settings",
		Description: "Configure your store, payment providers and shipping.",
		Feature:     "Store configuration",
	},
	{
		Slug:        "social",
		Title:       "Social",
		Description: "Connect social channels and schedule posts about your products.",
		Feature:     "Social channel publishing",
	},
}

func findHub(slug string) (Hub, bool) {
	for _, h := range Hubs {
		if h.Slug == slug {
			return h, true
		}
	}
	return Hub{}, false
}

var funcs = template.FuncMap{
	"button": func(variant, size string) string {
		return ui.ButtonClasses(ui.ButtonVariant(variant), ui.ButtonSize(size))
	},
	"badge": func(variant string) string {
		return ui.BadgeClasses(ui.BadgeVariant(variant))
	},
	"spinner": func(size string) string {
		return ui.SpinnerClasses(ui.SpinnerSize(size))
	},
	"date":     format.Date,
	"truncate": format.Truncate,
}

var templates = template.Must(
	template.New("admin").Funcs(funcs).ParseFS(templateFS, "templates/*.html"),
)

type pageData struct {
	Hubs        []Hub
	Hub         Hub
	GeneratedAt time.Time
}

// Handler renders the static admin screens.
type Handler struct {
	now func() time.Time
}

func NewHandler(now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{now: now}
}

func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", pageData{Hubs: Hubs, GeneratedAt: h.now()})
}

func (h *Handler) HandleHub(w http.ResponseWriter, r *http.Request) {
	hub, ok := findHub(chi.URLParam(r, "hub"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	h.render(w, r, "hub.html", pageData{Hubs: Hubs, Hub: hub, GeneratedAt: h.now()})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		core.LogError(r.Context(), "failed to render admin page", zap.String("template", name), zap.Error(err))
	}
}
