package web

// Язык берётся из сессии один раз на запрос и дальше передаётся явно;
// дефолт — турецкий, как в исходном магазине.

const defaultLang = "tr"

var labels = map[string]map[string]string{
	"tr": {
		"home":         "Ana Sayfa",
		"login":        "Giriş",
		"register":     "Kayıt",
		"logout":       "Çıkış",
		"seller_panel": "Satıcı Paneli",
		"welcome":      "Hoşgeldin",
		"search":       "Arama",
		"category":     "Kategori",
		"filter":       "Filtrele",
		"product_page": "Ürün Sayfası",
		"buy":          "Satın Al",
		"add_product":  "Ürün Ekle",
		"delete":       "Sil",
		"price":        "Fiyat",
		"description":  "Açıklama",
		"payment_link": "Ödeme Linki",
		"product_list": "Ürünleriniz",
		"password":     "Şifre",
		"username":     "Kullanıcı Adı",
		"all":          "Tümü",

		"err_username_taken": "Kullanıcı mevcut",
		"err_invalid_login":  "Hatalı giriş",
		"err_not_found":      "Ürün bulunamadı",
		"err_bad_price":      "Geçersiz fiyat",
	},
	"en": {
		"home":         "Home",
		"login":        "Login",
		"register":     "Register",
		"logout":       "Logout",
		"seller_panel": "Seller Panel",
		"welcome":      "Welcome",
		"search":       "Search",
		"category":     "Category",
		"filter":       "Filter",
		"product_page": "Product Page",
		"buy":          "Buy",
		"add_product":  "Add Product",
		"delete":       "Delete",
		"price":        "Price",
		"description":  "Description",
		"payment_link": "Payment Link",
		"product_list": "Your Products",
		"password":     "Password",
		"username":     "Username",
		"all":          "All",

		"err_username_taken": "Username taken",
		"err_invalid_login":  "Invalid login",
		"err_not_found":      "Product not found",
		"err_bad_price":      "Invalid price",
	},
}

// Labels — вся таблица подписей для языка; неизвестный язык падает в дефолт.
func Labels(lang string) map[string]string {
	if m, ok := labels[lang]; ok {
		return m
	}
	return labels[defaultLang]
}

// Label — одна подпись; неизвестный ключ возвращается как есть.
func Label(lang, key string) string {
	if v, ok := Labels(lang)[key]; ok {
		return v
	}
	return key
}
