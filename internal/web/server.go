package web

import (
	"errors"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yusufstudio18-creator-1/yusuf-market/internal/auth"
	"github.com/yusufstudio18-creator-1/yusuf-market/internal/catalog"
	"github.com/yusufstudio18-creator-1/yusuf-market/internal/config"
	"github.com/yusufstudio18-creator-1/yusuf-market/internal/qr"
)

type ViewData map[string]any

const (
	sessSellerID = "seller_id"
	sessUsername = "username"
	sessLang     = "lang"

	ctxSellerID = "currentSellerID"
)

// Server связывает роутер с сервисами; никакого глобального состояния.
type Server struct {
	cfg     config.Config
	auth    *auth.Service
	catalog *catalog.Service
	router  *gin.Engine
}

func New(cfg config.Config, gdb *gorm.DB) *Server {
	s := &Server{
		cfg:     cfg,
		auth:    auth.New(gdb),
		catalog: catalog.New(gdb),
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	store := cookie.NewStore(cfg.SessionSecret)
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("market_session", store))

	r.SetHTMLTemplate(mustTemplates())

	r.GET("/", s.home)
	r.GET("/urun/:id", s.productPage)
	r.GET("/login", s.loginForm)
	r.POST("/login", s.login)
	r.GET("/register", s.registerForm)
	r.POST("/register", s.register)
	r.GET("/logout", s.logout)
	r.GET("/switch_lang", s.switchLang)

	satici := r.Group("/satici", requireSeller())
	satici.GET("/panel", s.panel)
	satici.GET("/ekle", s.addForm)
	satici.POST("/ekle", s.addProduct)
	satici.POST("/delete/:id", s.deleteProduct)

	s.router = r
	return s
}

func (s *Server) Router() *gin.Engine { return s.router }

func (s *Server) Run() error { return s.router.Run(":" + s.cfg.Port) }

// ---------- session helpers ----------

func sessionLang(c *gin.Context) string {
	if v, ok := sessions.Default(c).Get(sessLang).(string); ok && v != "" {
		return v
	}
	return defaultLang
}

// withView дополняет данные страницы языком и текущим пользователем.
func withView(c *gin.Context, data ViewData) ViewData {
	if data == nil {
		data = ViewData{}
	}
	lang := sessionLang(c)
	data["Lang"] = lang
	data["T"] = Labels(lang)

	sess := sessions.Default(c)
	if v, ok := sess.Get(sessUsername).(string); ok {
		data["Username"] = v
	}
	return data
}

// ---------- public pages ----------

func (s *Server) home(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("kategori")

	items, err := s.catalog.ListProducts(c.Request.Context(), query, category)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	cats, err := s.catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "home.tmpl", withView(c, ViewData{
		"Items":      items,
		"Query":      query,
		"Categories": cats,
		"Selected":   category,
	}))
}

func (s *Server) productPage(c *gin.Context) {
	item, err := s.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		c.String(http.StatusNotFound, Label(sessionLang(c), "err_not_found"))
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	uri, err := qr.DataURI(item.PaymentLink)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "product.tmpl", withView(c, ViewData{
		"Item": item,
		// template.URL: иначе html/template зарежет data:-схему
		"QR": template.URL(uri),
	}))
}

// ---------- auth ----------

func (s *Server) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", withView(c, nil))
}

func (s *Server) login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("kullanici_adi"))
	password := c.PostForm("sifre")

	seller, err := s.auth.Login(c.Request.Context(), username, password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.HTML(http.StatusUnauthorized, "login.tmpl", withView(c, ViewData{
			"Error": Label(sessionLang(c), "err_invalid_login"),
		}))
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessSellerID, seller.ID)
	sess.Set(sessUsername, seller.Username)
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) registerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", withView(c, nil))
}

func (s *Server) register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("kullanici_adi"))
	password := c.PostForm("sifre")

	_, err := s.auth.Register(c.Request.Context(), username, password)
	if errors.Is(err, auth.ErrUsernameTaken) {
		c.HTML(http.StatusBadRequest, "register.tmpl", withView(c, ViewData{
			"Error": Label(sessionLang(c), "err_username_taken"),
		}))
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) switchLang(c *gin.Context) {
	sess := sessions.Default(c)
	next := "en"
	if sessionLang(c) == "en" {
		next = "tr"
	}
	sess.Set(sessLang, next)
	_ = sess.Save()

	ref := c.Request.Referer()
	if ref == "" {
		ref = "/"
	}
	c.Redirect(http.StatusSeeOther, ref)
}

// ---------- seller area ----------

func (s *Server) panel(c *gin.Context) {
	items, err := s.catalog.ListOwnProducts(c.Request.Context(), c.GetString(ctxSellerID))
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "panel.tmpl", withView(c, ViewData{"Items": items}))
}

func (s *Server) addForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add.tmpl", withView(c, ViewData{"Form": ViewData{}}))
}

func (s *Server) addProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("ad"))
	priceRaw := strings.TrimSpace(c.PostForm("fiyat"))
	description := strings.TrimSpace(c.PostForm("aciklama"))
	category := strings.TrimSpace(c.PostForm("kategori"))
	link := strings.TrimSpace(c.PostForm("link"))

	form := ViewData{
		"Name": name, "Price": priceRaw, "Description": description,
		"Category": category, "PaymentLink": link,
	}

	price, err := strconv.ParseFloat(strings.ReplaceAll(priceRaw, ",", "."), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		c.HTML(http.StatusBadRequest, "add.tmpl", withView(c, ViewData{
			"Error": Label(sessionLang(c), "err_bad_price"),
			"Form":  form,
		}))
		return
	}

	_, err = s.catalog.AddProduct(c.Request.Context(),
		c.GetString(ctxSellerID), name, price, description, category, link)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusSeeOther, "/satici/panel")
}

func (s *Server) deleteProduct(c *gin.Context) {
	// чужой или несуществующий товар — no-op, всё равно обратно в панель
	err := s.catalog.DeleteProduct(c.Request.Context(), c.GetString(ctxSellerID), c.Param("id"))
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusSeeOther, "/satici/panel")
}
