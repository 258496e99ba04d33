package web

import "html/template"

// Шаблоны встроены строками: исходный магазин рендерит inline-шаблоны,
// так что дерево view-файлов здесь не нужно.

const baseCSS = `<style>
body { font-family: Arial, sans-serif; background:#f9f9f9; margin:0; padding:10px;}
button { background:#3498db; color:white; border:none; padding:8px 12px; cursor:pointer; border-radius:5px; }
a { text-decoration:none; color:#3498db; margin-right:10px; }
.container { display:flex; flex-wrap:wrap; justify-content:center; }
.card { background:white; border:1px solid #ddd; border-radius:8px; padding:15px; margin:10px; width:250px; }
.error { color:#c0392b; }
</style>`

const langNav = `<nav><a href="/switch_lang"><button>{{if eq .Lang "tr"}}EN{{else}}TR{{end}}</button></a></nav>`

const homeTmpl = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head><meta charset="UTF-8"><title>Yusuf Market</title>` + baseCSS + `</head>
<body>
` + langNav + `
<h1 style="text-align:center;">🛍 Yusuf Market</h1>
<nav>
{{if .Username}}
{{.T.welcome}} {{.Username}} | <a href="/satici/panel">{{.T.seller_panel}}</a> | <a href="/logout">{{.T.logout}}</a>
{{else}}
<a href="/login">{{.T.login}}</a> | <a href="/register">{{.T.register}}</a>
{{end}}
</nav>
<form method="get" action="/">
{{.T.search}}: <input name="q" value="{{.Query}}">
{{.T.category}}:
<select name="kategori">
<option value="">{{.T.all}}</option>
{{range .Categories}}<option value="{{.}}" {{if eq . $.Selected}}selected{{end}}>{{.}}</option>{{end}}
</select>
<button type="submit">{{.T.filter}}</button>
</form>
<div class="container">
{{range .Items}}
<div class="card">
<h3>{{.Name}} - {{.Price}} TL</h3>
<p>{{.Description}}</p>
<p>{{$.T.category}}: {{.Category}}</p>
<a href="/urun/{{.ID}}"><button>{{$.T.product_page}}</button></a>
</div>
{{end}}
</div>
</body>
</html>`

const productTmpl = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head><meta charset="UTF-8"><title>{{.Item.Name}} - Yusuf Market</title>` + baseCSS + `</head>
<body>
` + langNav + `
<h2 style="text-align:center;">{{.Item.Name}} - {{.Item.Price}} TL</h2>
<p style="text-align:center;">{{.Item.Description}}</p>
<p style="text-align:center;">{{.T.category}}: {{.Item.Category}}</p>
<a href="{{.Item.PaymentLink}}" target="_blank"><button>{{.T.buy}}</button></a>
<hr>
<p style="text-align:center;">QR Code:</p>
<img style="display:block; margin:auto;" src="{{.QR}}">
<br><a href="/">{{.T.home}}</a>
</body>
</html>`

const panelTmpl = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head><meta charset="UTF-8"><title>{{.T.seller_panel}}</title>` + baseCSS + `</head>
<body>
` + langNav + `
<h2>{{.T.seller_panel}} ({{.Username}})</h2>
<a href="/satici/ekle">{{.T.add_product}}</a> | <a href="/logout">{{.T.logout}}</a>
<hr>
<h3>{{.T.product_list}}</h3>
<ul>
{{range .Items}}
<li>{{.Name}} - {{$.T.price}}: {{.Price}} TL - {{$.T.category}}: {{.Category}}
<form method="post" action="/satici/delete/{{.ID}}" style="display:inline">
<button type="submit">{{$.T.delete}}</button>
</form>
</li>
{{end}}
</ul>
<a href="/">{{.T.home}}</a>
</body>
</html>`

const addTmpl = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head><meta charset="UTF-8"><title>{{.T.add_product}}</title>` + baseCSS + `</head>
<body>
` + langNav + `
<h2>{{.T.add_product}}</h2>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post">
{{.T.product_page}}: <input type="text" name="ad" value="{{.Form.Name}}"><br><br>
{{.T.price}}: <input type="text" name="fiyat" value="{{.Form.Price}}"><br><br>
{{.T.description}}: <input type="text" name="aciklama" value="{{.Form.Description}}"><br><br>
{{.T.category}}: <input type="text" name="kategori" value="{{.Form.Category}}"><br><br>
{{.T.payment_link}}: <input type="text" name="link" value="{{.Form.PaymentLink}}"><br><br>
<button type="submit">{{.T.add_product}}</button>
</form>
<a href="/satici/panel">{{.T.seller_panel}}</a> | <a href="/">{{.T.home}}</a>
</body>
</html>`

const loginTmpl = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head><meta charset="UTF-8"><title>{{.T.login}}</title>` + baseCSS + `</head>
<body>
<h2>{{.T.login}}</h2>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post">
{{.T.username}}: <input type="text" name="kullanici_adi"><br><br>
{{.T.password}}: <input type="password" name="sifre"><br><br>
<button type="submit">{{.T.login}}</button>
</form>
<a href="/register">{{.T.register}}</a> | <a href="/">{{.T.home}}</a>
</body>
</html>`

const registerTmpl = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head><meta charset="UTF-8"><title>{{.T.register}}</title>` + baseCSS + `</head>
<body>
<h2>{{.T.register}}</h2>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post">
{{.T.username}}: <input type="text" name="kullanici_adi"><br><br>
{{.T.password}}: <input type="password" name="sifre"><br><br>
<button type="submit">{{.T.register}}</button>
</form>
<a href="/login">{{.T.login}}</a> | <a href="/">{{.T.home}}</a>
</body>
</html>`

func mustTemplates() *template.Template {
	root := template.New("")
	for name, src := range map[string]string{
		"home.tmpl":     homeTmpl,
		"product.tmpl":  productTmpl,
		"panel.tmpl":    panelTmpl,
		"add.tmpl":      addTmpl,
		"login.tmpl":    loginTmpl,
		"register.tmpl": registerTmpl,
	} {
		template.Must(root.New(name).Parse(src))
	}
	return root
}
