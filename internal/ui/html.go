package ui

import (
	"bytes"
	"html/template"
	"io"
)

// RenderHTML writes the full page. Every value is bound through html/template escaping.
func RenderHTML(w io.Writer, page Page) error {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, page); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>Recipe Finder</title>
<style>
*{box-sizing:border-box}
body{margin:0;font-family:ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial;background:#fff8f0;color:#2d2a26}
header{padding:24px;text-align:center}
.search-bar{display:flex;gap:8px;justify-content:center;flex-wrap:wrap}
.search-bar input{padding:10px 14px;border-radius:10px;border:1px solid #d9c7b3;min-width:260px}
button{padding:10px 14px;border-radius:10px;border:0;background:#e07a35;color:#fff;cursor:pointer}
.hidden{display:none}
.alert{margin:0 auto 16px;max-width:600px;padding:12px;border-radius:10px;background:#fde2e1;color:#8a1c14;text-align:center}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:16px;padding:0 24px 24px}
.recipe-card{background:#fff;border-radius:14px;padding:12px;box-shadow:0 4px 14px rgba(0,0,0,.08)}
.recipe-card img{width:100%;border-radius:10px}
.recipe-card form{display:inline}
.placeholder-text{grid-column:1/-1;text-align:center;color:#7a6e62}
.modal{position:fixed;inset:0;display:flex;align-items:center;justify-content:center}
.modal .backdrop{position:absolute;inset:0;width:100%;height:100%;border-radius:0;background:rgba(0,0,0,.55);cursor:default}
.modal-content{position:relative;background:#fff;max-width:640px;max-height:90vh;overflow:auto;border-radius:14px;padding:24px}
.modal-content img{width:100%;border-radius:10px}
.close-btn{position:absolute;top:8px;right:8px}
.instructions{white-space:pre-line}
</style>
</head>
<body>
<header>
  <h1>Recipe Finder</h1>
  <form class="search-bar" method="post" action="/search">
    <input id="searchInput" type="text" name="q" value="{{.Query}}" placeholder="Search for a recipe..." autofocus />
    <button id="searchBtn" type="submit">Search</button>
  </form>
  <form class="search-bar" method="post" action="/view/toggle">
    <button id="viewFavoritesBtn" type="submit">{{if .FavoritesVisible}}Back to Results{{else}}View Favorites{{end}}</button>
  </form>
</header>
{{with .Alert}}<p class="alert" role="alert">{{.}}</p>{{end}}
<section class="results-section{{if .FavoritesVisible}} hidden{{end}}">
  <div id="results" class="grid">
  {{with .Results.Placeholder}}<p class="placeholder-text">{{.}}</p>{{end}}
  {{range .Results.Cards}}{{template "card" .}}{{end}}
  </div>
</section>
<section class="favorites-section{{if not .FavoritesVisible}} hidden{{end}}">
  <div id="favorites" class="grid">
  {{with .Favorites.Placeholder}}<p class="placeholder-text">{{.}}</p>{{end}}
  {{range .Favorites.Cards}}{{template "card" .}}{{end}}
  </div>
</section>
{{if .Modal.Open}}{{with .Modal.Recipe}}
<div id="recipeModal" class="modal">
  <form method="post" action="/modal/dismiss">
    <button class="backdrop" type="submit" name="target" value="backdrop" aria-label="Close"></button>
  </form>
  <div id="modalDetails" class="modal-content">
    <form method="post" action="/modal/close"><button class="close-btn" type="submit">&times;</button></form>
    <h2>{{.Name}}</h2>
    {{with .ThumbnailURL}}<img src="{{.}}" alt="{{$.Modal.Recipe.Name}}">{{end}}
    <h3>Ingredients</h3>
    <ul class="ingredients">
    {{range .Ingredients}}<li>{{.Name}}{{with .Measure}} - {{.}}{{end}}</li>
    {{end}}</ul>
    <h3>Instructions</h3>
    <p class="instructions">{{.Instructions}}</p>
    {{with .VideoURL}}<a class="video-link" href="{{.}}" target="_blank" rel="noopener">Watch on YouTube</a>{{end}}
  </div>
</div>
{{end}}{{end}}
</body>
</html>
{{define "card"}}
<div class="recipe-card" data-id="{{.ID}}">
  {{with .ThumbnailURL}}<img src="{{.}}" alt="{{$.Name}}">{{end}}
  <h3>{{.Name}}</h3>
  <form method="post" action="/details">
    <input type="hidden" name="id" value="{{.ID}}" />
    <button class="details-btn" type="submit">View Details</button>
  </form>
  <form method="post" action="/favorites/toggle">
    <input type="hidden" name="id" value="{{.ID}}" />
    <input type="hidden" name="name" value="{{.Name}}" />
    <input type="hidden" name="thumb" value="{{.ThumbnailURL}}" />
    <button class="favorite-btn" type="submit">{{if .Favorite}}Remove{{else}}Favorite{{end}}</button>
  </form>
</div>
{{end}}`))
